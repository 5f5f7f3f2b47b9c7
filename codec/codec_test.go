package codec

import (
	"errors"
	"testing"

	"github.com/anoto-go/microdot/classify"
)

// stubCodec is a test double standing in for the real pseudo-random
// sequence lookup; it is not a reimplementation of Anoto's algebra, only
// enough to exercise the adapter's wiring.
type stubCodec struct {
	pos    Position
	sec    Section
	posErr error
	secErr error
}

func (s *stubCodec) DecodePosition(block [4][4]Vector) (Position, error) {
	return s.pos, s.posErr
}

func (s *stubCodec) DecodeSection(block [4][4]Vector, pos Position) (Section, error) {
	return s.sec, s.secErr
}

func fullGrid(rows, cols int, fill classify.Symbol) *classify.SymbolGrid {
	cells := make([]classify.Symbol, rows*cols)
	for i := range cells {
		cells[i] = fill
	}
	return &classify.SymbolGrid{Rows: rows, Cols: cols, Cells: cells}
}

func setCell(g *classify.SymbolGrid, row, col int, s classify.Symbol) {
	g.Cells[row*g.Cols+col] = s
}

func TestFind4x4FindsCompleteBlock(t *testing.T) {
	grid := fullGrid(5, 5, classify.Absent)
	for r := 1; r < 5; r++ {
		for c := 0; c < 4; c++ {
			setCell(grid, r, c, classify.Right)
		}
	}
	_, row, col, ok := Find4x4(grid)
	if !ok {
		t.Fatal("expected a complete block")
	}
	if row != 1 || col != 0 {
		t.Errorf("block at (%d,%d), want (1,0)", row, col)
	}
}

func TestFind4x4NoneWhenGridTooSmall(t *testing.T) {
	grid := fullGrid(3, 3, classify.Right)
	_, _, _, ok := Find4x4(grid)
	if ok {
		t.Fatal("expected no block in a 3x3 grid")
	}
}

func TestDecodeNoDecodableRegion(t *testing.T) {
	grid := fullGrid(4, 4, classify.Absent)
	_, err := Decode(grid, &stubCodec{})
	if err != ErrNoDecodableRegion {
		t.Fatalf("err = %v, want ErrNoDecodableRegion", err)
	}
}

func TestDecodeOffsetsPositionByBlockLocation(t *testing.T) {
	grid := fullGrid(6, 6, classify.Absent)
	for r := 2; r < 6; r++ {
		for c := 1; c < 5; c++ {
			setCell(grid, r, c, classify.Up)
		}
	}
	stub := &stubCodec{pos: Position{X: 10, Y: 20}, sec: Section{X: 1, Y: 2}}
	result, err := Decode(grid, stub)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if result.Position.X != 11 || result.Position.Y != 22 {
		t.Errorf("Position = %+v, want {11 22}", result.Position)
	}
	if result.Section != (Section{X: 1, Y: 2}) {
		t.Errorf("Section = %+v, want {1 2}", result.Section)
	}
}

func TestDecodeCodecRejection(t *testing.T) {
	grid := fullGrid(4, 4, classify.Left)
	stub := &stubCodec{posErr: errors.New("inconsistent block")}
	_, err := Decode(grid, stub)
	if err != ErrCodecRejected {
		t.Fatalf("err = %v, want ErrCodecRejected", err)
	}
}

func TestEncodeVectorsPerSpec(t *testing.T) {
	grid := fullGrid(4, 4, classify.Absent)
	syms := []classify.Symbol{classify.Up, classify.Down, classify.Left, classify.Right}
	want := []Vector{{0, 0}, {1, 1}, {1, 0}, {0, 1}}
	for i, s := range syms {
		setCell(grid, 0, i, s)
	}
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			setCell(grid, r, c, classify.Right)
		}
	}
	block, _, _, ok := Find4x4(grid)
	if !ok {
		t.Fatal("expected a complete block")
	}
	for i, w := range want {
		if block[0][i] != w {
			t.Errorf("block[0][%d] = %+v, want %+v", i, block[0][i], w)
		}
	}
}
