package microdot

import "github.com/anoto-go/microdot/geom"

// Sensor-fixed constants, re-exported from geom so callers never need to
// import it directly. None of these are inferred per frame; they describe
// the physical geometry of the printed carrier grid and the camera sensor.
const (
	// ImageSize is the fixed width and height, in pixels, of a captured frame.
	ImageSize = geom.ImageSize

	// GridSpacing is the distance, in pixels, between adjacent carrier grid
	// lines. 23/3 rather than a rounder number because it reflects the
	// physical dot pitch upsampled to sensor resolution.
	GridSpacing = geom.GridSpacing

	// DotOffset is the distance from a grid intersection to the center of
	// its dot along the dot's cardinal direction.
	DotOffset = geom.DotOffset

	// BinarizeThreshold is the fixed grayscale cutoff; pixels strictly below
	// this value are foreground.
	BinarizeThreshold = geom.BinarizeThreshold
)
