// Package geom provides the small set of 2-D point and angle utilities
// shared by the blob, grid, and classify packages, along with the
// sensor-fixed constants that describe the carrier grid's geometry.
package geom

import "math"

// Sensor-fixed constants. None of these are inferred per frame; they
// describe the physical geometry of the printed carrier grid and the
// camera sensor that captures it.
const (
	// ImageSize is the fixed width and height, in pixels, of a captured frame.
	ImageSize = 36

	// GridSpacing is the distance, in pixels, between adjacent carrier grid
	// lines: 23/3, the physical dot pitch upsampled to sensor resolution.
	GridSpacing = 23.0 / 3.0

	// DotOffset is the distance from a grid intersection to the center of
	// its dot along the dot's cardinal direction.
	DotOffset = GridSpacing / 3.0

	// BinarizeThreshold is the fixed grayscale cutoff; pixels strictly below
	// this value are foreground.
	BinarizeThreshold = 200
)

// Image is a fixed-size grayscale snapshot captured by the sensor: an
// ImageSize x ImageSize array of 8-bit intensities, row-major.
type Image struct {
	Pix [ImageSize * ImageSize]uint8
}

// At returns the intensity at (x, y). x and y must be in [0, ImageSize).
func (img *Image) At(x, y int) uint8 {
	return img.Pix[y*ImageSize+x]
}

// Set stores the intensity at (x, y). x and y must be in [0, ImageSize).
func (img *Image) Set(x, y int, v uint8) {
	img.Pix[y*ImageSize+x] = v
}

// Point is a fractional 2-D coordinate: a blob centroid, a grid
// intersection, or any point in between.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Angle90 returns atan2(dy, dx) in degrees for the vector from q to p
// (dx = p.X-q.X, dy = p.Y-q.Y), adding 90 when that angle is negative.
// Grid axes are indistinguishable at this stage, and the fold maps some
// directions of both axes onto the same values. The result lies in
// [-90, 180], not in [0, 90): the two orderings of a horizontal pair give
// 0 and 180.
func (p Point) Angle90(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	degrees := math.Atan2(dy, dx) * 180 / math.Pi
	if degrees < 0 {
		degrees += 90
	}
	return degrees
}

// Angle360 returns the full-range angle from p to q, in (-180, 180] degrees.
func (p Point) Angle360(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// Rotate returns p rotated by degrees around the origin.
func (p Point) Rotate(degrees float64) Point {
	radians := degrees * math.Pi / 180
	sin, cos := math.Sin(radians), math.Cos(radians)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}
