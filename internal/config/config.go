package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrNoCapture is returned when no capture file was given.
var ErrNoCapture = errors.New("no capture file given (use -pcap or a positional argument)")

// Config holds all application configuration.
type Config struct {
	PcapPath    string
	LinkType    string // auto, ethernet, dot11, radiotap
	DBPath      string // empty disables persistence
	MetricsAddr string // empty disables the HTTP server
	Trace       bool
	TraceRatio  float64 // share of traces recorded when Trace is set
	Debug       bool
	Limit       int           // 0 means no limit
	OUIPath     string        // SQLite OUI registry; empty disables vendor lookup
	OUIImport   string        // IEEE oui.csv or "XX:XX:XX Vendor" text merged into the registry
	OUICache    int           // vendor lookups kept in memory
	OUIMissTTL  time.Duration // how long an unknown OUI is remembered, 0 to always ask
}

// Load parses command line flags and environment variables to populate Config.
// Flags take precedence over environment variables.
func Load() (*Config, error) {
	return Parse(flag.CommandLine, os.Args[1:])
}

// Parse populates Config from fs and args, with WMAP_* environment fallbacks.
// A single positional argument is accepted as the capture path.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// Defaults and Environment Variables
	cfg.PcapPath = getEnv("WMAP_PCAP", "")
	cfg.LinkType = getEnv("WMAP_LINKTYPE", "auto")
	cfg.DBPath = getEnv("WMAP_DB", "")
	cfg.MetricsAddr = getEnv("WMAP_METRICS_ADDR", "")
	cfg.Trace = getEnvBool("WMAP_TRACE", false)
	cfg.TraceRatio = getEnvFloat("WMAP_TRACE_RATIO", 1)
	cfg.Debug = getEnvBool("WMAP_DEBUG", false)
	cfg.Limit = getEnvInt("WMAP_LIMIT", 0)
	cfg.OUIPath = getEnv("WMAP_OUI_DB", "")
	cfg.OUIImport = getEnv("WMAP_OUI_IMPORT", "")
	cfg.OUICache = getEnvInt("WMAP_OUI_CACHE", 1024)
	cfg.OUIMissTTL = getEnvDuration("WMAP_OUI_MISS_TTL", 5*time.Minute)

	// Command Line Flags (Override Env)
	fs.StringVar(&cfg.PcapPath, "pcap", cfg.PcapPath, "Path to pcap or pcapng capture file")
	fs.StringVar(&cfg.LinkType, "linktype", cfg.LinkType, "Link type override: auto, ethernet, dot11, radiotap")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database for the network inventory (empty to disable)")
	fs.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "HTTP address for /metrics and /api (empty to disable)")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "Export OpenTelemetry spans to stderr")
	fs.Float64Var(&cfg.TraceRatio, "trace-ratio", cfg.TraceRatio, "Share of traces recorded, in (0, 1]")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable verbose debug logging")
	fs.IntVar(&cfg.Limit, "limit", cfg.Limit, "Stop after this many frames (0 for all)")
	fs.StringVar(&cfg.OUIPath, "oui", cfg.OUIPath, "Path to SQLite OUI registry for vendor lookup")
	fs.StringVar(&cfg.OUIImport, "oui-import", cfg.OUIImport, "OUI list to import into the registry before decoding")
	fs.IntVar(&cfg.OUICache, "oui-cache", cfg.OUICache, "Number of OUI lookups cached in memory")
	fs.DurationVar(&cfg.OUIMissTTL, "oui-miss-ttl", cfg.OUIMissTTL, "How long an unregistered OUI stays cached (0 to disable)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if rest := fs.Args(); len(rest) > 0 && cfg.PcapPath == "" {
		cfg.PcapPath = rest[0]
	}
	cfg.LinkType = strings.ToLower(strings.TrimSpace(cfg.LinkType))
	// An import without a registry path goes to an in-memory registry.
	if cfg.OUIImport != "" && cfg.OUIPath == "" {
		cfg.OUIPath = ":memory:"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that have no usable default.
func (c *Config) Validate() error {
	if c.PcapPath == "" {
		return ErrNoCapture
	}
	if c.Limit < 0 {
		return errors.New("limit must not be negative")
	}
	if c.OUIImport != "" && c.OUIPath == "" {
		return errors.New("oui-import needs an OUI registry path")
	}
	if c.TraceRatio <= 0 || c.TraceRatio > 1 {
		return errors.New("trace-ratio must be above 0 and at most 1")
	}
	if c.OUICache < 1 {
		return errors.New("oui-cache must be at least 1")
	}
	if c.OUIMissTTL < 0 {
		return errors.New("oui-miss-ttl must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
