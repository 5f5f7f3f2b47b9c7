package microdot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anoto-go/microdot/bitutil"
	"github.com/anoto-go/microdot/geom"
)

// FrameFromImage converts a standard Go image.Image into a geom.Image,
// using the same luminance formula as Java ZXing's
// BufferedImageLuminanceSource: (306*R + 601*G + 117*B + 0x200) >> 10,
// operating on 8-bit color components. The source must be exactly
// geom.ImageSize x geom.ImageSize; this is a camera-frame loader for a
// fixed-geometry sensor, not a general-purpose image decoder.
func FrameFromImage(img image.Image) (*geom.Image, error) {
	bounds := img.Bounds()
	if bounds.Dx() != geom.ImageSize || bounds.Dy() != geom.ImageSize {
		return nil, fmt.Errorf("microdot: frame is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), geom.ImageSize, geom.ImageSize)
	}

	frame := &geom.Image{}
	for y := 0; y < geom.ImageSize; y++ {
		for x := 0; x < geom.ImageSize; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			_, _, _, a := c.RGBA()
			if a == 0 {
				frame.Set(x, y, 0xFF)
				continue
			}
			r, g, b, _ := c.RGBA()
			r8, g8, b8 := r>>8, g>>8, b>>8
			frame.Set(x, y, byte((306*r8+601*g8+117*b8+0x200)>>10))
		}
	}
	return frame, nil
}

// MaskToImage renders a BinaryMask as a grayscale image, black foreground
// on white, for debug inspection of an intermediate pipeline stage.
func MaskToImage(mask *bitutil.BitMatrix) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, mask.Width(), mask.Height()))
	for y := 0; y < mask.Height(); y++ {
		for x := 0; x < mask.Width(); x++ {
			if mask.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
