package blob

import (
	"image"
	"testing"

	"github.com/anoto-go/microdot/bitutil"
	"github.com/anoto-go/microdot/geom"
)

func setPixels(mask *bitutil.BitMatrix, pts []image.Point) {
	for _, p := range pts {
		mask.Set(p.X, p.Y)
	}
}

func TestLabelSingleBlob(t *testing.T) {
	mask := bitutil.NewBitMatrixWithSize(geom.ImageSize, geom.ImageSize)
	pts := []image.Point{{10, 10}, {11, 10}, {10, 11}, {11, 11}}
	setPixels(mask, pts)

	blobs := Label(mask)
	if len(blobs) != 1 {
		t.Fatalf("expected 1 blob, got %d", len(blobs))
	}
	if blobs[0].Area() != 4 {
		t.Errorf("expected area 4, got %d", blobs[0].Area())
	}
}

func TestLabelTwoSeparateBlobs(t *testing.T) {
	mask := bitutil.NewBitMatrixWithSize(geom.ImageSize, geom.ImageSize)
	setPixels(mask, []image.Point{{5, 5}, {6, 5}})
	setPixels(mask, []image.Point{{20, 20}, {21, 20}})

	blobs := Label(mask)
	if len(blobs) != 2 {
		t.Fatalf("expected 2 blobs, got %d", len(blobs))
	}
}

// Labeling coverage: the union of blob pixels equals the mask's foreground
// pixels, for every image.
func TestLabelCoverage(t *testing.T) {
	mask := bitutil.NewBitMatrixWithSize(geom.ImageSize, geom.ImageSize)
	want := []image.Point{
		{0, 0}, {1, 0}, {0, 1}, // touches the top-left corner
		{35, 35}, {34, 35}, // touches the bottom-right corner
		{17, 3}, {18, 9}, {2, 30},
	}
	setPixels(mask, want)

	blobs := Label(mask)
	covered := make(map[image.Point]bool)
	for _, b := range blobs {
		for _, p := range b.Pixels {
			if covered[p] {
				t.Fatalf("pixel %v assigned to more than one blob", p)
			}
			covered[p] = true
		}
	}
	if len(covered) != len(want) {
		t.Fatalf("covered %d pixels, want %d", len(covered), len(want))
	}
	for _, p := range want {
		if !covered[p] {
			t.Errorf("foreground pixel %v not covered by any blob", p)
		}
	}
}

func TestCenterIsArithmeticMean(t *testing.T) {
	b := &Blob{Pixels: []image.Point{{0, 0}, {2, 0}, {0, 2}, {2, 2}}}
	c := b.Center()
	if c.X != 1 || c.Y != 1 {
		t.Errorf("Center() = %v, want (1,1)", c)
	}
}

// Split conservation: the two output blobs partition the input's pixels.
func TestSplitConservation(t *testing.T) {
	// Two clusters of pixels far enough apart that Split cleanly separates them.
	b := &Blob{Pixels: []image.Point{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
		{10, 10}, {11, 10}, {10, 11}, {11, 11},
	}}
	a, c := b.Split()

	if len(a.Pixels)+len(c.Pixels) != len(b.Pixels) {
		t.Fatalf("split halves have %d+%d pixels, want %d", len(a.Pixels), len(c.Pixels), len(b.Pixels))
	}

	seen := make(map[image.Point]int)
	for _, p := range a.Pixels {
		seen[p]++
	}
	for _, p := range c.Pixels {
		seen[p]++
	}
	for _, p := range b.Pixels {
		if seen[p] != 1 {
			t.Errorf("pixel %v appears %d times across the two halves, want 1", p, seen[p])
		}
	}
}

func TestNeedsSplitStrictInequality(t *testing.T) {
	// NeedsSplit uses a strict inequality: a blob whose diameter exactly
	// equals 2*DotOffset must not be split. Pixels are on integer
	// coordinates, so the boundary itself is checked directly against the
	// comparison NeedsSplit performs rather than via MaxLength, which can't
	// land on the irrational-ish threshold exactly with integer inputs.
	b := &Blob{Pixels: []image.Point{{0, 0}, {5, 0}}}
	if b.MaxLength() != 5 {
		t.Fatalf("test setup: MaxLength = %v, want 5", b.MaxLength())
	}
	wantSplit := 5 > 2*geom.DotOffset
	if b.NeedsSplit() != wantSplit {
		t.Errorf("NeedsSplit() = %v, want %v", b.NeedsSplit(), wantSplit)
	}
}

func TestSplitOversizedLeavesSmallBlobsAlone(t *testing.T) {
	small := &Blob{Pixels: []image.Point{{0, 0}, {1, 0}}}
	out := SplitOversized([]*Blob{small})
	if len(out) != 1 {
		t.Fatalf("expected small blob to survive unsplit, got %d blobs", len(out))
	}
}
