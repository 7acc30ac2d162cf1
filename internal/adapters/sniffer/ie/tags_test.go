package ie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTagName_Total(t *testing.T) {
	seen := make(map[string]int)
	for n := 0; n <= 255; n++ {
		name := ParseTagName(byte(n))
		assert.Equal(t, byte(n), name.Number())
		if name.Known() {
			seen[name.String()]++
		} else {
			assert.Equal(t, fmt.Sprintf("Other(%d)", n), name.String())
		}
	}

	assert.Len(t, seen, len(tagNames))
	for name, count := range seen {
		assert.Equal(t, 1, count, "tag name %s resolved from more than one number", name)
	}
}

func TestParseTagName_WellKnown(t *testing.T) {
	assert.Equal(t, TagSSID, ParseTagName(0))
	assert.Equal(t, TagSupportedRates, ParseTagName(1))
	assert.Equal(t, TagDSParameter, ParseTagName(3))
	assert.Equal(t, TagRSNInformation, ParseTagName(48))
	assert.Equal(t, TagHTInformation, ParseTagName(61))
	assert.Equal(t, TagVHTCapabilities, ParseTagName(191))
	assert.False(t, ParseTagName(221).Known())
}
