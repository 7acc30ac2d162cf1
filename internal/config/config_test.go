package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("wmap-dissect", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"capture.pcap"})
	require.NoError(t, err)

	assert.Equal(t, "capture.pcap", cfg.PcapPath)
	assert.Equal(t, "auto", cfg.LinkType)
	assert.Empty(t, cfg.DBPath)
	assert.Empty(t, cfg.MetricsAddr)
	assert.False(t, cfg.Debug)
	assert.Zero(t, cfg.Limit)
	assert.Equal(t, 1.0, cfg.TraceRatio)
	assert.Equal(t, 1024, cfg.OUICache)
	assert.Equal(t, 5*time.Minute, cfg.OUIMissTTL)
}

func TestParse_EnvAndFlags(t *testing.T) {
	t.Setenv("WMAP_PCAP", "env.pcap")
	t.Setenv("WMAP_DB", "env.db")
	t.Setenv("WMAP_DEBUG", "true")
	t.Setenv("WMAP_LIMIT", "50")
	t.Setenv("WMAP_TRACE", "not-a-bool")

	cfg, err := Parse(newFlagSet(), []string{"-db", "flag.db", "-linktype", " RadioTap ", "-metrics", ":9100"})
	require.NoError(t, err)

	assert.Equal(t, "env.pcap", cfg.PcapPath)
	assert.Equal(t, "flag.db", cfg.DBPath)
	assert.Equal(t, "radiotap", cfg.LinkType)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Trace)
	assert.Equal(t, 50, cfg.Limit)
}

func TestParse_FlagBeatsPositional(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-pcap", "a.pcap", "b.pcap"})
	require.NoError(t, err)
	assert.Equal(t, "a.pcap", cfg.PcapPath)
}

func TestParse_OUIImportWithoutRegistry(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-oui-import", "oui.csv", "x.pcap"})
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.OUIPath)
	assert.Equal(t, "oui.csv", cfg.OUIImport)
}

func TestParse_OUICache(t *testing.T) {
	t.Setenv("WMAP_OUI_CACHE", "64")
	t.Setenv("WMAP_OUI_MISS_TTL", "30s")

	cfg, err := Parse(newFlagSet(), []string{"x.pcap"})
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.OUICache)
	assert.Equal(t, 30*time.Second, cfg.OUIMissTTL)

	cfg, err = Parse(newFlagSet(), []string{"-oui-cache", "8", "-oui-miss-ttl", "0", "x.pcap"})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.OUICache)
	assert.Zero(t, cfg.OUIMissTTL)
}

func TestValidate_DoesNotFillDefaults(t *testing.T) {
	cfg := &Config{PcapPath: "x.pcap", OUIImport: "oui.csv", OUICache: 1, TraceRatio: 1}
	assert.Error(t, cfg.Validate())
	assert.Empty(t, cfg.OUIPath)

	cfg.OUIPath = "oui.db"
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "oui.db", cfg.OUIPath)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(newFlagSet(), nil)
	assert.ErrorIs(t, err, ErrNoCapture)

	_, err = Parse(newFlagSet(), []string{"-limit", "-1", "x.pcap"})
	assert.Error(t, err)

	_, err = Parse(newFlagSet(), []string{"-trace-ratio", "1.5", "x.pcap"})
	assert.Error(t, err)

	_, err = Parse(newFlagSet(), []string{"-trace-ratio", "0", "x.pcap"})
	assert.Error(t, err)

	_, err = Parse(newFlagSet(), []string{"-oui-cache", "0", "x.pcap"})
	assert.Error(t, err)

	_, err = Parse(newFlagSet(), []string{"-oui-miss-ttl", "-1s", "x.pcap"})
	assert.Error(t, err)

	_, err = Parse(newFlagSet(), []string{"-unknown"})
	assert.Error(t, err)
}
