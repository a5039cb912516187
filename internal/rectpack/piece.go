package rectpack

import "fmt"

// Color labels which piece occupies a cell. Zero means the cell is empty,
// values 1 to 26 belong to placeable pieces and render as lowercase letters,
// and Blocked marks cells carved out of the playing area before the search
// starts. The solver never interprets colors beyond zero vs nonzero.
type Color uint8

const (
	Empty   Color = 0
	Blocked Color = 27
)

func (c Color) Rune() rune {
	switch {
	case c == Empty:
		return ' '
	case 1 <= c && c <= 26:
		return 'a' + rune(c) - 1
	default:
		return '#'
	}
}

// Size is a piece footprint, width by height.
type Size struct {
	W, H int
}

// Less orders sizes by width, then height. Pool iteration relies on this
// order to keep search results reproducible.
func (s Size) Less(other Size) bool {
	if s.W != other.W {
		return s.W < other.W
	}
	return s.H < other.H
}

func (s Size) Area() int { return s.W * s.H }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Piece is one concrete placeable rectangle. Pieces of equal size are
// interchangeable on the board but keep distinct colors for labeling the
// final grid.
type Piece struct {
	Size
	Color Color
}
