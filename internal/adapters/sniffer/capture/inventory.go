package capture

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/lcalzada-xor/wmap-dissect/internal/adapters/oui"
	"github.com/lcalzada-xor/wmap-dissect/internal/core/domain"
	"github.com/lcalzada-xor/wmap-dissect/internal/core/ports"
)

// Inventory aggregates beacons and probe responses into one observation per BSSID.
type Inventory struct {
	// Vendors, when set, names the vendor of each new BSSID.
	Vendors ports.VendorLookup

	mu       sync.Mutex
	networks map[string]*domain.NetworkObservation
}

// NewInventory creates an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{networks: make(map[string]*domain.NetworkObservation)}
}

// Observe folds d into the inventory. Only error-free beacons and probe
// responses describe a network; everything else is ignored.
func (inv *Inventory) Observe(d domain.Dissection) {
	if d.Err != nil || (d.Kind != "Beacon" && d.Kind != "ProbeResponse") || d.BSSID == "" {
		return
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	n, ok := inv.networks[d.BSSID]
	if !ok {
		n = &domain.NetworkObservation{
			BSSID:      d.BSSID,
			FirstSeen:  d.Timestamp,
			Signal:     d.Signal,
			Randomized: oui.IsLocallyAdministered(d.BSSID),
		}
		if inv.Vendors != nil && !n.Randomized {
			if vendor, err := inv.Vendors.LookupVendor(context.Background(), d.BSSID); err == nil {
				n.Vendor = vendor
			}
		}
		inv.networks[d.BSSID] = n
	}
	n.Frames++
	if d.Timestamp.After(n.LastSeen) {
		n.LastSeen = d.Timestamp
	}
	if d.Timestamp.Before(n.FirstSeen) {
		n.FirstSeen = d.Timestamp
	}

	// Hidden networks broadcast an empty SSID in beacons but may reveal it
	// in probe responses; keep the revealed name. A frame without an SSID
	// element says nothing about the name.
	switch {
	case !d.HasSSID:
	case !d.Hidden:
		n.SSID = d.SSID
		n.Hidden = false
	case n.SSID == "":
		n.Hidden = true
	}

	if d.Channel != 0 {
		n.Channel = d.Channel
	}
	if d.Frequency != 0 {
		n.Frequency = d.Frequency
	}
	if d.Signal != 0 && (n.Signal == 0 || d.Signal > n.Signal) {
		n.Signal = d.Signal
	}
	if len(d.Rates) > 0 {
		n.Rates = slices.Clone(d.Rates)
	}

	n.Security = securityLabel(d)
	if d.Security != nil {
		n.GroupCipher = d.Security.GroupCipher
		n.PairwiseCiphers = slices.Clone(d.Security.PairwiseCiphers)
		n.AKMSuites = slices.Clone(d.Security.AKMSuites)
		n.MFPRequired = d.Security.MFPRequired
	} else {
		n.GroupCipher = ""
		n.PairwiseCiphers = nil
		n.AKMSuites = nil
		n.MFPRequired = false
	}
}

// Networks returns a snapshot ordered by BSSID.
func (inv *Inventory) Networks() []domain.NetworkObservation {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	out := make([]domain.NetworkObservation, 0, len(inv.networks))
	for _, n := range inv.networks {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BSSID < out[j].BSSID })
	return out
}

// Len returns the number of distinct networks.
func (inv *Inventory) Len() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.networks)
}

// securityLabel classifies a network without RSN by its privacy bit.
func securityLabel(d domain.Dissection) string {
	switch {
	case d.Security != nil:
		return d.Security.Label
	case d.Privacy:
		return "WEP"
	default:
		return "OPEN"
	}
}

// ListNetworks implements ports.NetworkReader over the in-memory snapshot.
func (inv *Inventory) ListNetworks(ctx context.Context) ([]domain.NetworkObservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return inv.Networks(), nil
}

// GetNetwork returns a copy of the network observed for bssid.
func (inv *Inventory) GetNetwork(ctx context.Context, bssid string) (*domain.NetworkObservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()

	n, ok := inv.networks[bssid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrNetworkNotFound, bssid)
	}
	out := *n
	out.Rates = slices.Clone(n.Rates)
	out.PairwiseCiphers = slices.Clone(n.PairwiseCiphers)
	out.AKMSuites = slices.Clone(n.AKMSuites)
	return &out, nil
}

var _ ports.NetworkReader = (*Inventory)(nil)
