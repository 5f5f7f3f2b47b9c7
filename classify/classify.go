// Package classify turns a carrier grid's intersections and a frame's
// rotated centroids into a SymbolGrid: one of {U, D, L, R, !, *} per
// intersection, based on the direction from the intersection to its
// nearest centroid. Grounded in the original Python prototype's direction
// classification in original_source solve-anoto/main.py, generalized from
// that prototype's single-row scan into the rectangular grid spec.md §4.6
// describes.
package classify

import (
	"math"
	"strings"

	"github.com/anoto-go/microdot/geom"
)

// Symbol is one of the six values a classified intersection can take.
type Symbol byte

const (
	Up      Symbol = 'U'
	Down    Symbol = 'D'
	Left    Symbol = 'L'
	Right   Symbol = 'R'
	Unknown Symbol = '!'
	Absent  Symbol = '*'
)

// SymbolGrid is a rectangular array of classified intersections, row-major
// (row 0 is the topmost in the rotated frame).
type SymbolGrid struct {
	Rows, Cols int
	Cells      []Symbol
}

// At returns the symbol at (row, col).
func (g *SymbolGrid) At(row, col int) Symbol {
	return g.Cells[row*g.Cols+col]
}

// String renders the grid one row per line, for debugging.
func (g *SymbolGrid) String() string {
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			b.WriteByte(byte(g.At(r, c)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Classify assigns a symbol to every intersection in a rows x cols lattice
// (row-major, matching the order buildIntersections/Intersections produce:
// one row of y for each step of the outer loop, one column of x for each
// step of the inner loop), per spec.md §4.6:
//
//  1. Find the nearest rotated centroid; beyond 1.5*DotOffset, emit Absent.
//  2. Otherwise classify the full-range angle from intersection to centroid
//     with a 35-degree tolerance per direction, in priority order
//     R, D, U, L; an intersection matching none of the four cones is
//     Unknown.
func Classify(intersections []geom.Point, rows, cols int, centroids []geom.Point) *SymbolGrid {
	cells := make([]Symbol, len(intersections))
	for i, ip := range intersections {
		cells[i] = classifyOne(ip, centroids)
	}
	return &SymbolGrid{Rows: rows, Cols: cols, Cells: cells}
}

func classifyOne(ip geom.Point, centroids []geom.Point) Symbol {
	if len(centroids) == 0 {
		return Absent
	}
	nearest := centroids[0]
	best := ip.Distance(centroids[0])
	for _, c := range centroids[1:] {
		if d := ip.Distance(c); d < best {
			nearest, best = c, d
		}
	}
	if best > 1.5*geom.DotOffset {
		return Absent
	}

	angle := ip.Angle360(nearest)
	const tolerance = 35.0
	switch {
	case math.Abs(angle) <= tolerance:
		return Right
	case math.Abs(angle-90) <= tolerance:
		return Down
	case math.Abs(angle+90) <= tolerance:
		return Up
	case 180-math.Abs(angle) <= tolerance:
		return Left
	default:
		return Unknown
	}
}

// Trim strips leading/trailing rows and columns that consist entirely of
// Absent or Unknown symbols, per spec.md §4.7, returning the rectangular
// core.
func Trim(g *SymbolGrid) *SymbolGrid {
	rowEmpty := func(r int) bool {
		for c := 0; c < g.Cols; c++ {
			if s := g.At(r, c); s != Absent && s != Unknown {
				return false
			}
		}
		return true
	}
	colEmpty := func(c int) bool {
		for r := 0; r < g.Rows; r++ {
			if s := g.At(r, c); s != Absent && s != Unknown {
				return false
			}
		}
		return true
	}

	top := 0
	for top < g.Rows && rowEmpty(top) {
		top++
	}
	bottom := g.Rows - 1
	for bottom >= top && rowEmpty(bottom) {
		bottom--
	}
	left := 0
	for left < g.Cols && colEmpty(left) {
		left++
	}
	right := g.Cols - 1
	for right >= left && colEmpty(right) {
		right--
	}

	if top > bottom || left > right {
		return &SymbolGrid{Rows: 0, Cols: 0}
	}

	newRows, newCols := bottom-top+1, right-left+1
	cells := make([]Symbol, 0, newRows*newCols)
	for r := top; r <= bottom; r++ {
		for c := left; c <= right; c++ {
			cells = append(cells, g.At(r, c))
		}
	}
	return &SymbolGrid{Rows: newRows, Cols: newCols, Cells: cells}
}
