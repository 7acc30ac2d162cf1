package ie

import "fmt"

// TagName identifies an information element by its one-byte tag number.
// Well-known numbers have named constants; every other byte is an "other"
// tag that keeps its exact value.
type TagName uint8

// Well-known information element tags.
const (
	TagSSID                   TagName = 0
	TagSupportedRates         TagName = 1
	TagDSParameter            TagName = 3 // Channel
	TagTrafficIndicationMap   TagName = 5
	TagCountryInformation     TagName = 7
	TagQBSSLoadElement        TagName = 11
	TagPowerCapabilities      TagName = 33
	TagERPInformation         TagName = 42
	TagHTCapabilities         TagName = 45 // 802.11n
	TagRSNInformation         TagName = 48 // WPA2/WPA3
	TagExtendedSupportedRates TagName = 50
	TagHTInformation          TagName = 61
	TagExtendedCapabilities   TagName = 127
	TagVHTCapabilities        TagName = 191 // 802.11ac
)

var tagNames = map[TagName]string{
	TagSSID:                   "SSID",
	TagSupportedRates:         "SupportedRates",
	TagDSParameter:            "DSParameter",
	TagTrafficIndicationMap:   "TrafficIndicationMap",
	TagCountryInformation:     "CountryInformation",
	TagQBSSLoadElement:        "QBSSLoadElement",
	TagPowerCapabilities:      "PowerCapabilities",
	TagERPInformation:         "ERPInformation",
	TagHTCapabilities:         "HTCapabilities",
	TagRSNInformation:         "RSNInformation",
	TagExtendedSupportedRates: "ExtendedSupportedRates",
	TagHTInformation:          "HTInformation",
	TagExtendedCapabilities:   "ExtendedCapabilities",
	TagVHTCapabilities:        "VHTCapabilities",
}

// ParseTagName resolves a wire tag number. It is total: unknown numbers
// resolve to an "other" tag carrying the same byte.
func ParseTagName(number byte) TagName {
	return TagName(number)
}

// Number returns the wire tag number.
func (t TagName) Number() byte {
	return byte(t)
}

// Known reports whether t is one of the named tags.
func (t TagName) Known() bool {
	_, ok := tagNames[t]
	return ok
}

func (t TagName) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Other(%d)", uint8(t))
}
