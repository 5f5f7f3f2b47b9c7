// Package grid infers the hidden carrier grid's rotation and phase from a
// set of blob centroids. The carrier grid is never directly visible — only
// the dots' offsets from it are — so this is the subtlest stage of the
// pipeline: a pair survey and angle clustering recover rotation, then a
// small brute-force search over the four possible offset conventions
// recovers phase.
//
// Grounded in the original Python prototype's Point.angle_90/angle_360/
// rotate and cluster_pairs (original_source solve-anoto/main.py), with the
// phase search added per spec (see SPEC_FULL.md §4.5): that prototype
// variant hardcoded a single fixed shift with a "TODO: Determine how to
// shift grid points" comment; this package resolves it with an exhaustive
// four-candidate search instead.
package grid

import (
	"errors"
	"math"
	"sort"

	"github.com/anoto-go/microdot/geom"
)

// ErrInsufficientGeometry is returned when too few centroid pairs survive
// the pair survey (or the subsequent angle clustering) to infer an
// orientation for the carrier grid. The root package re-exports this as
// microdot.ErrInsufficientGeometry.
var ErrInsufficientGeometry = errors.New("grid: insufficient geometry to infer carrier grid")

// Model is the inferred carrier grid for one frame.
type Model struct {
	// Rotation is the angle, in degrees, to rotate the image so the
	// carrier grid becomes axis-aligned. Always in (-45, 45].
	Rotation float64

	// Spacing is the fixed distance between adjacent grid lines. It is
	// never inferred; it is always geom.GridSpacing.
	Spacing float64

	// PhaseX, PhaseY is the translation, applied in the rotated frame,
	// that aligns grid intersections with where carrier lines cross.
	PhaseX, PhaseY float64
}

type pair struct {
	angle float64
}

// cluster groups pairs.angle values; only the count and mean are needed.
type cluster struct {
	sum   float64
	count int
}

func (c cluster) mean() float64 { return c.sum / float64(c.count) }

// Estimate infers the carrier grid from a set of blob centroids in image
// coordinates; it rotates them into the grid-aligned frame itself. It returns ErrInsufficientGeometry if too few centroid pairs
// are grid-aligned to determine an orientation.
func Estimate(centroids []geom.Point) (*Model, error) {
	pairs := surveyPairs(centroids)
	if len(pairs) == 0 {
		return nil, ErrInsufficientGeometry
	}

	clusters := clusterByAngle(pairs, 5.0)
	if len(clusters) == 0 {
		return nil, ErrInsufficientGeometry
	}

	rotation := resolveRotation(clusters)

	rotated := make([]geom.Point, len(centroids))
	for i, c := range centroids {
		rotated[i] = c.Rotate(-rotation)
	}

	intersections, _, _ := buildIntersections(rotated)
	phaseX, phaseY := searchPhase(intersections, rotated)

	return &Model{
		Rotation: rotation,
		Spacing:  geom.GridSpacing,
		PhaseX:   phaseX,
		PhaseY:   phaseY,
	}, nil
}

// surveyPairs retains every unordered centroid pair whose distance is
// within 5% of k*GridSpacing for k in {1, 2} (k=2 bridges a missing middle
// dot), recording the pair's grid-aligned angle.
func surveyPairs(centroids []geom.Point) []pair {
	var pairs []pair
	for i := 0; i < len(centroids); i++ {
		for j := i + 1; j < len(centroids); j++ {
			d := centroids[i].Distance(centroids[j])
			for k := 1; k <= 2; k++ {
				target := float64(k) * geom.GridSpacing
				if math.Abs(d-target) < 0.05*target {
					pairs = append(pairs, pair{angle: centroids[i].Angle90(centroids[j])})
					break
				}
			}
		}
	}
	return pairs
}

// clusterByAngle sorts pairs by folded angle and starts a new cluster
// whenever the gap to the running angle exceeds tolerance degrees. Returns
// clusters sorted largest-first.
func clusterByAngle(pairs []pair, tolerance float64) []cluster {
	if len(pairs) == 0 {
		return nil
	}
	sorted := make([]pair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].angle < sorted[j].angle })

	var clusters []cluster
	cur := cluster{sum: sorted[0].angle, count: 1}
	curAngle := sorted[0].angle
	for _, p := range sorted[1:] {
		if math.Abs(p.angle-curAngle) <= tolerance {
			cur.sum += p.angle
			cur.count++
		} else {
			clusters = append(clusters, cur)
			cur = cluster{sum: p.angle, count: 1}
		}
		curAngle = p.angle
	}
	clusters = append(clusters, cur)

	sort.SliceStable(clusters, func(i, j int) bool { return clusters[i].count > clusters[j].count })
	return clusters
}

// resolveRotation picks the grid rotation from the largest one or two
// angle clusters, per spec.md §4.5 Step 3.
func resolveRotation(clusters []cluster) float64 {
	angle1 := clusters[0].mean()

	var angle2 float64
	haveAngle2 := false
	if len(clusters) > 1 {
		candidate := clusters[1].mean()
		diff := angle1 - candidate
		if diff < 0 {
			diff += 180
		}
		if math.Abs(90-diff) <= 5 {
			angle2 = candidate
			haveAngle2 = true
		}
	}
	if !haveAngle2 {
		angle2 = angle1 - 90
		if angle2 < 0 {
			angle2 += 180
		}
	}

	rotation := angle1
	if math.Abs(angle2) < math.Abs(angle1) {
		rotation = angle2
	}
	if rotation > 45 {
		rotation = 90 - rotation
	}
	return rotation
}

// buildIntersections enumerates carrier-grid intersections in the rotated
// frame, starting from the rotated centroid nearest the image center and
// walking outward by Spacing one step past the bounds on every side. It
// also reports the row and column count of the resulting lattice, since
// the starting offset (and so the lattice's size) depends on the data.
func buildIntersections(rotated []geom.Point) (points []geom.Point, rows, cols int) {
	center := geom.Point{X: geom.ImageSize / 2, Y: geom.ImageSize / 2}
	nearest := rotated[0]
	bestDist := center.Distance(rotated[0])
	for _, p := range rotated[1:] {
		if d := center.Distance(p); d < bestDist {
			nearest, bestDist = p, d
		}
	}

	spacing := geom.GridSpacing
	minBound, maxBound := -spacing, geom.ImageSize+spacing

	startX := nearest.X
	for startX > minBound {
		startX -= spacing
	}
	startY := nearest.Y
	for startY > minBound {
		startY -= spacing
	}

	var intersections []geom.Point
	for y := startY; y < maxBound; y += spacing {
		rows++
		cols = 0
		for x := startX; x < maxBound; x += spacing {
			cols++
			intersections = append(intersections, geom.Point{X: x, Y: y})
		}
	}
	return intersections, rows, cols
}

// searchPhase brute-forces the four candidate translations
// (+-DotOffset, 0) and (0, +-DotOffset), picking whichever places the most
// intersections within 1.5*DotOffset of a rotated centroid; on equal hit
// counts the earliest candidate in that order is kept. The lattice from
// buildIntersections is anchored on a centroid, so its points start on the
// dots that share the anchor dot's direction. The candidate that moves them
// back onto the carrier-line crossings leaves every dot DotOffset from its
// own crossing, inside the hit radius whatever its direction, while the
// other candidates miss dots of some directions. When every dot points the
// same way, all four candidates score alike and (DotOffset, 0) is kept.
func searchPhase(intersections, rotated []geom.Point) (phaseX, phaseY float64) {
	candidates := []geom.Point{
		{X: geom.DotOffset, Y: 0},
		{X: -geom.DotOffset, Y: 0},
		{X: 0, Y: geom.DotOffset},
		{X: 0, Y: -geom.DotOffset},
	}

	bestHits := -1
	best := candidates[0]
	for _, cand := range candidates {
		hits := 0
		for _, ip := range intersections {
			shifted := ip.Add(cand)
			if nearestDistance(shifted, rotated) < 1.5*geom.DotOffset {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = cand
		}
	}
	return best.X, best.Y
}

func nearestDistance(p geom.Point, points []geom.Point) float64 {
	best := math.Inf(1)
	for _, q := range points {
		if d := p.Distance(q); d < best {
			best = d
		}
	}
	return best
}

// Intersections returns the grid's intersections, in the rotated frame,
// shifted by the estimated phase, in row-major order along with the
// lattice's row and column count.
func (m *Model) Intersections(rotated []geom.Point) (points []geom.Point, rows, cols int) {
	raw, rows, cols := buildIntersections(rotated)
	shift := geom.Point{X: m.PhaseX, Y: m.PhaseY}
	shifted := make([]geom.Point, len(raw))
	for i, p := range raw {
		shifted[i] = p.Add(shift)
	}
	return shifted, rows, cols
}
