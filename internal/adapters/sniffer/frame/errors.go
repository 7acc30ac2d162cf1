package frame

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural decode failures
var (
	// ErrTruncated indicates the buffer ends before a fixed header does
	ErrTruncated = errors.New("frame truncated")

	// ErrUnsupportedLayer indicates an ethertype with no known next layer
	ErrUnsupportedLayer = errors.New("unsupported next layer")

	// ErrUnsupportedSubtype indicates a management subtype with no tagged body decoder
	ErrUnsupportedSubtype = errors.New("unsupported management subtype")

	// ErrNotManagement indicates an 802.11 frame whose type is not management
	ErrNotManagement = errors.New("not a management frame")
)

// TruncatedError reports how many bytes a layer needed and how many it had.
type TruncatedError struct {
	Layer string
	Need  int
	Have  int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%s: need %d bytes, have %d", e.Layer, e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error {
	return ErrTruncated
}

// UnsupportedLayerError carries the ethertype that could not be dispatched.
type UnsupportedLayerError struct {
	EtherType EtherType
}

func (e *UnsupportedLayerError) Error() string {
	return fmt.Sprintf("unsupported ethertype %s", e.EtherType)
}

func (e *UnsupportedLayerError) Unwrap() error {
	return ErrUnsupportedLayer
}

// UnsupportedSubtypeError carries the management subtype that has no decoder.
type UnsupportedSubtypeError struct {
	Subtype ManagementSubtype
}

func (e *UnsupportedSubtypeError) Error() string {
	return fmt.Sprintf("unsupported management subtype %s", e.Subtype)
}

func (e *UnsupportedSubtypeError) Unwrap() error {
	return ErrUnsupportedSubtype
}

func need(layer string, data []byte, n int) error {
	if len(data) < n {
		return &TruncatedError{Layer: layer, Need: n, Have: len(data)}
	}
	return nil
}
