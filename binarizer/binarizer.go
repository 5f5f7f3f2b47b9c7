// Package binarizer converts a grayscale sensor frame to a binary mask.
//
// The teacher corpus's binarizer package offered two strategies behind a
// shared Binarizer interface: GlobalHistogram (a histogram valley-finding
// threshold) and Hybrid (local adaptive thresholding for uneven lighting).
// Both exist because barcode photographs come from cameras under unknown,
// often poor lighting. This sensor is different: it is a fixed, short-throw
// optical sensor with fixed illumination, and the spec rules adaptive
// thresholding out as a non-goal. So only the interface shape survives here
// — BlackMatrix() (*bitutil.BitMatrix, error) — wired to a single fixed
// threshold instead of a histogram.
package binarizer

import (
	"github.com/anoto-go/microdot/bitutil"
	"github.com/anoto-go/microdot/geom"
)

// FixedThreshold binarizes a grayscale image against a constant cutoff.
// A pixel becomes foreground (1) iff its intensity is strictly below
// geom.BinarizeThreshold.
type FixedThreshold struct {
	source *geom.Image
}

// NewFixedThreshold creates a binarizer over the given image.
func NewFixedThreshold(source *geom.Image) *FixedThreshold {
	return &FixedThreshold{source: source}
}

// BlackMatrix returns the full binarized mask. It never errors; the
// method returns an error to match the Binarizer shape other strategies in
// this corpus use, and so callers aren't tied to a signature that assumes
// binarization can never fail.
func (f *FixedThreshold) BlackMatrix() (*bitutil.BitMatrix, error) {
	matrix := bitutil.NewBitMatrixWithSize(geom.ImageSize, geom.ImageSize)
	for y := 0; y < geom.ImageSize; y++ {
		for x := 0; x < geom.ImageSize; x++ {
			if f.source.At(x, y) < geom.BinarizeThreshold {
				matrix.Set(x, y)
			}
		}
	}
	return matrix, nil
}
