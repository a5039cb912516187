package rectpack

import (
	"fmt"
	"strings"
)

// Board is the authoritative record of cell occupancy: a flat row-major
// array of colors plus its dimensions. Zero cells are open, nonzero cells
// are taken (including Blocked holes baked in at construction). Boards are
// cheap to copy and the search copies them on every branch, so there is no
// unplace operation.
type Board struct {
	w, h  int
	cells []Color
}

func NewBoard(w, h int) Board {
	return Board{w: w, h: h, cells: make([]Color, w*h)}
}

func (b Board) Width() int  { return b.w }
func (b Board) Height() int { return b.h }

// panics [AssertionError] when x:y lies outside the board; reading out of
// range is an index bug, not a puzzle state
func (b Board) At(x, y int) Color {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		panic(AssertionError{fmt.Sprintf("cell %d:%d outside %dx%d board", x, y, b.w, b.h)})
	}
	return b.cells[y*b.w+x]
}

// Clone returns an independent copy. Sibling branches of the search must
// never observe each other's mutations.
func (b Board) Clone() Board {
	return Board{w: b.w, h: b.h, cells: append([]Color(nil), b.cells...)}
}

// Place writes piece over the footprint anchored at its top-left corner x:y.
// Bounds are checked first, then every footprint cell is scanned in
// row-major order and the first occupied one is reported in a
// [FilledCellError]. No cell is written until the whole footprint is
// confirmed empty, so a failed call leaves the board untouched.
func (b Board) Place(piece Piece, x, y int) error {
	if x < 0 || y < 0 || x+piece.W > b.w || y+piece.H > b.h {
		return OutOfBoundsError{x, y}
	}
	for yy := y; yy < y+piece.H; yy++ {
		for xx := x; xx < x+piece.W; xx++ {
			if b.cells[yy*b.w+xx] != Empty {
				return FilledCellError{xx, yy}
			}
		}
	}
	for yy := y; yy < y+piece.H; yy++ {
		for xx := x; xx < x+piece.W; xx++ {
			b.cells[yy*b.w+xx] = piece.Color
		}
	}
	return nil
}

// String renders the board one rune per cell: space for empty, 'a'..'z' for
// piece colors, '#' for blocked cells. Diagnostics only.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			sb.WriteRune(b.cells[y*b.w+x].Rune())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
