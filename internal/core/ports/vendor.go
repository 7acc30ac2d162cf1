package ports

import "context"

// VendorLookup resolves the registered vendor of a MAC address.
type VendorLookup interface {
	LookupVendor(ctx context.Context, mac string) (string, error)
}
