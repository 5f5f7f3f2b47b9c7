// Package codec adapts a classified SymbolGrid to the external position
// codec: it scans for a fully-populated contiguous 4x4 block, encodes it as
// the 2-bit vectors the codec expects, and offsets the codec's answer by
// the block's location within the grid. The codec's own algebra (the
// pseudo-random sequence lookup) is out of scope here; it is consumed
// through PositionCodec, grounded in the way the teacher repo treats its
// own downstream symbology-specific decoders as injected collaborators
// behind a narrow interface rather than reimplemented.
package codec

import (
	"errors"

	"github.com/anoto-go/microdot/classify"
)

// ErrNoDecodableRegion is returned when the symbol grid contains no
// complete 4x4 block (no '*' and no '!'). The root package re-exports this
// as microdot.ErrNoDecodableRegion.
var ErrNoDecodableRegion = errors.New("codec: no decodable 4x4 region in symbol grid")

// ErrCodecRejected is returned when PositionCodec refuses a 4x4 block as
// internally inconsistent. The root package re-exports this as
// microdot.ErrCodecRejected.
var ErrCodecRejected = errors.New("codec: downstream codec rejected symbol block")

// Vector is the 2-bit encoding of one classified symbol: U -> (0,0),
// D -> (1,1), L -> (1,0), R -> (0,1), per spec.md §4.8. It has no
// constructor for '*'/'!'; Find4x4 only ever builds blocks free of both.
type Vector struct {
	A, B int
}

// Position is a decoded pattern coordinate.
type Position struct {
	X, Y uint32
}

// Section is a decoded section coordinate, meaningful only together with a
// Position.
type Section struct {
	X, Y uint32
}

// PositionCodec is the external collaborator: the pseudo-random sequence
// lookup that turns a self-consistent 4x4 block of 2-bit vectors into
// pattern coordinates. Implementations may reject a block they find
// internally inconsistent by returning an error; the adapter surfaces that
// as ErrCodecRejected.
type PositionCodec interface {
	DecodePosition(block [4][4]Vector) (Position, error)
	DecodeSection(block [4][4]Vector, pos Position) (Section, error)
}

// Result is the decoded position and section for one frame. Position
// already includes the offset of the 4x4 block the codec was handed within
// the symbol grid (added to report the coordinate of the image center
// rather than the block's own corner); the offset is not stored separately.
type Result struct {
	Position Position
	Section  Section
}

func encode(s classify.Symbol) (Vector, bool) {
	switch s {
	case classify.Up:
		return Vector{0, 0}, true
	case classify.Down:
		return Vector{1, 1}, true
	case classify.Left:
		return Vector{1, 0}, true
	case classify.Right:
		return Vector{0, 1}, true
	default:
		return Vector{}, false
	}
}

// Find4x4 scans grid in row-major order for the first fully-populated
// contiguous 4x4 sub-block (no '*', no '!') and returns its encoded
// vectors along with its top-left row/column within grid. ok is false if
// no such block exists.
func Find4x4(grid *classify.SymbolGrid) (block [4][4]Vector, row, col int, ok bool) {
	if grid.Rows < 4 || grid.Cols < 4 {
		return block, 0, 0, false
	}
	for r := 0; r+4 <= grid.Rows; r++ {
		for c := 0; c+4 <= grid.Cols; c++ {
			var candidate [4][4]Vector
			complete := true
			for dr := 0; dr < 4 && complete; dr++ {
				for dc := 0; dc < 4; dc++ {
					v, encoded := encode(grid.At(r+dr, c+dc))
					if !encoded {
						complete = false
						break
					}
					candidate[dr][dc] = v
				}
			}
			if complete {
				return candidate, r, c, true
			}
		}
	}
	return block, 0, 0, false
}

// Decode runs the adapter end to end: find a 4x4 block, hand it to codec,
// and offset the returned position by the block's location in grid.
func Decode(grid *classify.SymbolGrid, codec PositionCodec) (Result, error) {
	block, row, col, ok := Find4x4(grid)
	if !ok {
		return Result{}, ErrNoDecodableRegion
	}

	pos, err := codec.DecodePosition(block)
	if err != nil {
		return Result{}, ErrCodecRejected
	}
	sec, err := codec.DecodeSection(block, pos)
	if err != nil {
		return Result{}, ErrCodecRejected
	}

	return Result{
		Position: Position{X: pos.X + uint32(col), Y: pos.Y + uint32(row)},
		Section:  sec,
	}, nil
}
