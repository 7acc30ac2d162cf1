package storage

import (
	"encoding/json"

	"github.com/lcalzada-xor/wmap-dissect/internal/core/domain"
)

// toDomain converts a database model to a domain entity.
func toDomain(m NetworkModel) domain.NetworkObservation {
	n := domain.NetworkObservation{
		BSSID:       m.BSSID,
		SSID:        m.SSID,
		Hidden:      m.Hidden,
		Vendor:      m.Vendor,
		Randomized:  m.Randomized,
		Channel:     m.Channel,
		Frequency:   m.Frequency,
		Signal:      m.Signal,
		Security:    m.Security,
		GroupCipher: m.GroupCipher,
		MFPRequired: m.MFPRequired,
		Frames:      m.Frames,
		FirstSeen:   m.FirstSeen,
		LastSeen:    m.LastSeen,
	}

	// Malformed columns decode to empty lists.
	if m.PairwiseCiphers != "" {
		_ = json.Unmarshal([]byte(m.PairwiseCiphers), &n.PairwiseCiphers)
	}
	if m.AKMSuites != "" {
		_ = json.Unmarshal([]byte(m.AKMSuites), &n.AKMSuites)
	}
	if m.Rates != "" {
		_ = json.Unmarshal([]byte(m.Rates), &n.Rates)
	}
	return n
}

// toModel converts a domain entity to a database model.
func toModel(sessionID string, n domain.NetworkObservation) NetworkModel {
	return NetworkModel{
		BSSID:           n.BSSID,
		SessionID:       sessionID,
		SSID:            n.SSID,
		Hidden:          n.Hidden,
		Vendor:          n.Vendor,
		Randomized:      n.Randomized,
		Channel:         n.Channel,
		Frequency:       n.Frequency,
		Signal:          n.Signal,
		Security:        n.Security,
		GroupCipher:     n.GroupCipher,
		PairwiseCiphers: encodeList(n.PairwiseCiphers),
		AKMSuites:       encodeList(n.AKMSuites),
		MFPRequired:     n.MFPRequired,
		Rates:           encodeList(n.Rates),
		Frames:          n.Frames,
		FirstSeen:       n.FirstSeen.UTC(),
		LastSeen:        n.LastSeen.UTC(),
	}
}

func encodeList[T any](v []T) string {
	if len(v) == 0 {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
