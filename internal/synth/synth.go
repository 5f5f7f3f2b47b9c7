// Package synth renders synthetic camera frames for round-trip testing.
// It mirrors the relationship between simulate_image_capture.py's
// CAMERA_VIEW_PIXELS/CAMERA_RESOLUTION constants and
// generate_anoto_grid.py's single-pixel dot rendering (both in
// original_source mouse-sensor-toys): a pattern is drawn at coarse
// "generator" resolution, one pixel per dot offset from its grid
// intersection, then upsampled to sensor resolution with a Lanczos
// filter, per SPEC_FULL.md §8's synthesis round-trip property.
//
// This package is test-only scaffolding; nothing in the decoder pipeline
// imports it.
package synth

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/anoto-go/microdot/classify"
	"github.com/anoto-go/microdot/geom"
)

// CameraViewPixels is the generator-resolution width/height of one
// captured window, matching simulate_image_capture.py's
// CAMERA_VIEW_PIXELS.
const CameraViewPixels = 14

// generatorSpacing is the distance, in generator pixels, between adjacent
// carrier grid intersections (generate_anoto_grid.py's SPACING, using the
// 3-pixel variant the spec's synthesis property names).
const generatorSpacing = 3

// generatorDotOffset is the distance, in generator pixels, from an
// intersection to its dot, matching the single-pixel north/south/east/west
// placement in generate_anoto_grid.py.
const generatorDotOffset = 1

// Pattern supplies the symbol at each carrier-grid intersection, indexed
// by intersection column and row in generator space. Absent/Unknown
// symbols leave that intersection bare.
type Pattern func(col, row int) classify.Symbol

// Render draws a CameraViewPixels x CameraViewPixels generator-resolution
// window starting at (originCol, originRow), one pixel per dot offset from
// its intersection, then upsamples it to a geom.ImageSize x geom.ImageSize
// sensor frame with a Lanczos-3 filter.
func Render(pattern Pattern, originCol, originRow int) *geom.Image {
	src := image.NewGray(image.Rect(0, 0, CameraViewPixels, CameraViewPixels))
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	cells := CameraViewPixels/generatorSpacing + 2
	for gy := -1; gy <= cells; gy++ {
		for gx := -1; gx <= cells; gx++ {
			col, row := originCol+gx, originRow+gy
			sym := pattern(col, row)
			if sym != classify.Up && sym != classify.Down && sym != classify.Left && sym != classify.Right {
				continue
			}
			ix, iy := gx*generatorSpacing, gy*generatorSpacing
			dx, dy := dotDelta(sym)
			px, py := ix+dx, iy+dy
			if px < 0 || px >= CameraViewPixels || py < 0 || py >= CameraViewPixels {
				continue
			}
			src.SetGray(px, py, color.Gray{Y: 0})
		}
	}

	dst := image.NewGray(image.Rect(0, 0, geom.ImageSize, geom.ImageSize))
	lanczos3 := draw.Kernel{Support: 3, At: lanczosAt(3)}
	lanczos3.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	frame := &geom.Image{}
	for y := 0; y < geom.ImageSize; y++ {
		for x := 0; x < geom.ImageSize; x++ {
			frame.Set(x, y, dst.GrayAt(x, y).Y)
		}
	}
	return frame
}

func dotDelta(sym classify.Symbol) (dx, dy int) {
	switch sym {
	case classify.Up:
		return 0, -generatorDotOffset
	case classify.Down:
		return 0, generatorDotOffset
	case classify.Left:
		return -generatorDotOffset, 0
	case classify.Right:
		return generatorDotOffset, 0
	default:
		return 0, 0
	}
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

// lanczosAt returns the Lanczos-a kernel as a draw.Kernel.At function,
// grounded on Fepozopo-timp/pkg/stdimg/resample.go's lanczosKernel.
func lanczosAt(a float64) func(float64) float64 {
	return func(x float64) float64 {
		x = math.Abs(x)
		if x < 1e-12 {
			return 1
		}
		if x >= a {
			return 0
		}
		return sinc(x) * sinc(x/a)
	}
}
