package domain

import "time"

// NetworkObservation aggregates what was learned about one BSS from its
// beacons and probe responses.
type NetworkObservation struct {
	BSSID           string    `json:"bssid"`
	SSID            string    `json:"ssid"`
	Hidden          bool      `json:"hidden"`
	Vendor          string    `json:"vendor,omitempty"`
	Randomized      bool      `json:"randomized"` // locally administered BSSID
	Channel         int       `json:"channel,omitempty"`
	Frequency       int       `json:"freq,omitempty"`
	Signal          int       `json:"signal,omitempty"` // strongest seen, dBm
	Security        string    `json:"security"`         // OPEN, WEP, WPA2, WPA3, ...
	GroupCipher     string    `json:"group_cipher,omitempty"`
	PairwiseCiphers []string  `json:"pairwise_ciphers,omitempty"`
	AKMSuites       []string  `json:"akm_suites,omitempty"`
	MFPRequired     bool      `json:"mfp_required"`
	Rates           []float64 `json:"rates,omitempty"`
	Frames          int       `json:"frames"`
	FirstSeen       time.Time `json:"first_seen"`
	LastSeen        time.Time `json:"last_seen"`
}
