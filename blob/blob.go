// Package blob turns a binary mask into connected-component blobs, splits
// oversized ones, and extracts their centroids. Grounded in the original
// Python prototype's Blob/label_blobs/Blob.split (original_source
// solve-anoto/main.py), ported to Go and, per the spec's design notes,
// split away from that prototype's destructive in-place labeling: the mask
// here stays read-only and labels live in a separate plane.
package blob

import (
	"image"
	"math"

	"github.com/anoto-go/microdot/bitutil"
	"github.com/anoto-go/microdot/geom"
)

// Blob is a maximal 8-connected set of foreground pixels.
type Blob struct {
	Pixels []image.Point
}

// Area returns the pixel count.
func (b *Blob) Area() int {
	return len(b.Pixels)
}

// MaxLength returns the maximum pairwise Euclidean distance between any two
// pixels in the blob, i.e. its diameter.
func (b *Blob) MaxLength() float64 {
	max := 0.0
	for i := 0; i < len(b.Pixels); i++ {
		for j := i + 1; j < len(b.Pixels); j++ {
			if d := pixelDistance(b.Pixels[i], b.Pixels[j]); d > max {
				max = d
			}
		}
	}
	return max
}

// Center returns the arithmetic mean of the blob's pixel coordinates.
// Undefined on an empty blob; Label never produces one.
func (b *Blob) Center() geom.Point {
	var sx, sy float64
	for _, p := range b.Pixels {
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	n := float64(len(b.Pixels))
	return geom.Point{X: sx / n, Y: sy / n}
}

// NeedsSplit reports whether the blob's diameter exceeds the signature of
// two touching dots: strictly more than 2*DotOffset. Equal-to is not split.
func (b *Blob) NeedsSplit() bool {
	return b.MaxLength() > 2*geom.DotOffset
}

// Split partitions the blob into two, on the theory that it is two touching
// dots fused by the labeler. It finds the diameter pair (p1, p2), then the
// diameter pair of the remaining pixels (p3, p4), pairs them by whichever
// cross-distance is shorter, and partitions every pixel by nearest
// resulting midpoint. Ties on either max-length search are broken in favor
// of the first pair encountered, a documented arbitrary choice carried over
// from the original prototype.
func (b *Blob) Split() (Blob, Blob) {
	var p1, p2 image.Point
	maxLen := -1.0
	for i := 0; i < len(b.Pixels); i++ {
		for j := i + 1; j < len(b.Pixels); j++ {
			if d := pixelDistance(b.Pixels[i], b.Pixels[j]); d > maxLen {
				p1, p2, maxLen = b.Pixels[i], b.Pixels[j], d
			}
		}
	}

	var p3, p4 image.Point
	maxLen2 := -1.0
	for i := 0; i < len(b.Pixels); i++ {
		pi := b.Pixels[i]
		if pi == p1 || pi == p2 {
			continue
		}
		for j := i + 1; j < len(b.Pixels); j++ {
			pj := b.Pixels[j]
			if pj == p1 || pj == p2 {
				continue
			}
			if d := pixelDistance(pi, pj); d > maxLen2 {
				p3, p4, maxLen2 = pi, pj, d
			}
		}
	}

	var mid1, mid2 geom.Point
	if pixelDistance(p1, p3) < pixelDistance(p1, p4) {
		mid1, mid2 = midpoint(p1, p3), midpoint(p2, p4)
	} else {
		mid1, mid2 = midpoint(p1, p4), midpoint(p2, p3)
	}

	var a, c Blob
	for _, p := range b.Pixels {
		pf := geom.Point{X: float64(p.X), Y: float64(p.Y)}
		if pf.Distance(mid1) < pf.Distance(mid2) {
			a.Pixels = append(a.Pixels, p)
		} else {
			c.Pixels = append(c.Pixels, p)
		}
	}
	return a, c
}

func pixelDistance(p, q image.Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func midpoint(p, q image.Point) geom.Point {
	return geom.Point{X: float64(p.X+q.X) / 2, Y: float64(p.Y+q.Y) / 2}
}

// Label finds every 8-connected foreground blob in mask via a single
// raster scan: for each foreground pixel, adopt a neighbor's label if one
// exists, otherwise allocate a fresh one, then promote any still-unlabeled
// foreground neighbors to the same label. This is a one-pass, approximate
// scheme — two regions touching only through a descending-diagonal path on
// the second row can end up with different labels — tolerated because the
// decoder treats such fragments as independent dots; only the opposite
// error (two true dots fused into one blob) is compensated for, by Split.
func Label(mask *bitutil.BitMatrix) []*Blob {
	size := geom.ImageSize
	labels := make([]int, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if mask.Get(x, y) {
				labels[y*size+x] = 1
			}
		}
	}

	var order []int
	blobsByID := make(map[int]*Blob)
	nextID := 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := y*size + x
			if labels[idx] != 1 {
				continue
			}

			foundID := 0
		search:
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= size {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if nx < 0 || nx >= size || (dx == 0 && dy == 0) {
						continue
					}
					if labels[ny*size+nx] > 1 {
						foundID = labels[ny*size+nx]
						break search
					}
				}
			}

			if foundID == 0 {
				foundID = nextID
				nextID++
				order = append(order, foundID)
			}

			b := blobsByID[foundID]
			if b == nil {
				b = &Blob{}
				blobsByID[foundID] = b
			}
			labels[idx] = foundID
			b.Pixels = append(b.Pixels, image.Point{X: x, Y: y})

			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= size {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if nx < 0 || nx >= size {
						continue
					}
					nidx := ny*size + nx
					if labels[nidx] == 1 {
						labels[nidx] = foundID
						b.Pixels = append(b.Pixels, image.Point{X: nx, Y: ny})
					}
				}
			}
		}
	}

	blobs := make([]*Blob, 0, len(order))
	for _, id := range order {
		blobs = append(blobs, blobsByID[id])
	}
	return blobs
}

// SplitOversized returns blobs with every blob that needs splitting
// (per NeedsSplit) replaced by its two halves. The spec does not handle a
// blob formed by three or more touching dots; such a blob's MaxLength
// would exceed 2*DotOffset just the same and still only be split in two,
// producing an incorrect pair. Implementers who want to guard against that
// can check Area against a typical-dot-area multiple before calling this
// and fail the frame instead — this package does not do so itself, since
// the spec leaves the choice open.
func SplitOversized(blobs []*Blob) []*Blob {
	out := make([]*Blob, 0, len(blobs))
	for _, b := range blobs {
		if b.NeedsSplit() {
			a, c := b.Split()
			out = append(out, &a, &c)
		} else {
			out = append(out, b)
		}
	}
	return out
}

// Centroids extracts the Center of every blob, in the same order.
func Centroids(blobs []*Blob) []geom.Point {
	centroids := make([]geom.Point, len(blobs))
	for i, b := range blobs {
		centroids[i] = b.Center()
	}
	return centroids
}
