package ports

import (
	"context"
	"errors"

	"github.com/lcalzada-xor/wmap-dissect/internal/core/domain"
)

// ErrNetworkNotFound is returned by GetNetwork for an unknown BSSID.
var ErrNetworkNotFound = errors.New("network not found")

// NetworkReader reads observed networks.
type NetworkReader interface {
	// ListNetworks returns every network ordered by BSSID.
	ListNetworks(ctx context.Context) ([]domain.NetworkObservation, error)

	// GetNetwork returns the network with the normalized bssid, or an error
	// wrapping ErrNetworkNotFound.
	GetNetwork(ctx context.Context, bssid string) (*domain.NetworkObservation, error)
}

// NetworkStore persists the networks observed across capture sessions.
type NetworkStore interface {
	NetworkReader

	// SaveNetworks upserts observations by BSSID, tagging them with sessionID.
	SaveNetworks(ctx context.Context, sessionID string, networks []domain.NetworkObservation) error

	// Close closes the storage connection.
	Close() error
}
