package domain

import "time"

// Dissection summarizes one decoded capture record.
type Dissection struct {
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	LinkType  string    `json:"link_type"`
	Layer     string    `json:"layer"` // "ethernet", "dot11"

	// RF (radiotap only)
	Signal    int `json:"signal,omitempty"` // dBm
	Frequency int `json:"freq,omitempty"`   // MHz

	Source      string `json:"source,omitempty"`
	Destination string `json:"destination,omitempty"`
	BSSID       string `json:"bssid,omitempty"`

	// Ethernet
	NextLayer string `json:"next_layer,omitempty"` // "IPv4", "IPv6"

	// 802.11 management
	Subtype  string    `json:"subtype,omitempty"`
	Kind     string    `json:"kind,omitempty"`
	SSID     string    `json:"ssid,omitempty"`
	HasSSID  bool      `json:"has_ssid,omitempty"` // an SSID element was present
	Hidden   bool      `json:"hidden,omitempty"`
	Channel  int       `json:"channel,omitempty"`
	Rates    []float64 `json:"rates,omitempty"`
	Tags     []int     `json:"tags,omitempty"`
	Privacy  bool      `json:"privacy,omitempty"`
	Security *Security `json:"security,omitempty"`

	Err error `json:"-"`
}

// Security is the flattened RSN element of a management frame.
type Security struct {
	Version         int      `json:"version"`
	Reserved        bool     `json:"reserved,omitempty"`
	Label           string   `json:"label"` // WPA2, WPA3, ...
	GroupCipher     string   `json:"group_cipher,omitempty"`
	PairwiseCiphers []string `json:"pairwise_ciphers,omitempty"`
	AKMSuites       []string `json:"akm_suites,omitempty"`
	MFPRequired     bool     `json:"mfp_required,omitempty"`
	MFPCapable      bool     `json:"mfp_capable,omitempty"`
}

// IsManagement reports whether the record decoded as an 802.11 management frame.
func (d Dissection) IsManagement() bool {
	return d.Layer == "dot11" && d.Kind != ""
}
