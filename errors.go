package microdot

import (
	"github.com/anoto-go/microdot/codec"
	"github.com/anoto-go/microdot/grid"
)

var (
	// ErrInsufficientGeometry is returned when too few centroids (or too few
	// grid-aligned pairs between them) survive to infer the carrier grid.
	ErrInsufficientGeometry = grid.ErrInsufficientGeometry

	// ErrNoDecodableRegion is returned when the symbol grid contains no
	// fully-populated contiguous 4x4 block for the codec adapter to forward.
	ErrNoDecodableRegion = codec.ErrNoDecodableRegion

	// ErrCodecRejected is returned when the external position codec refuses
	// a 4x4 block as internally inconsistent.
	ErrCodecRejected = codec.ErrCodecRejected
)
