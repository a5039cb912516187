// Package puzzle turns declarative puzzle definitions into initial solver
// state. A definition is the construction-time input of the system: board
// dimensions, permanently blocked cells, pre-placed fixed pieces and the
// inventory of pieces left to place.
package puzzle

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/rectpack-server/internal/rectpack"
)

type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Placement is a piece baked into the board before the search starts.
type Placement struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Color  int `json:"color"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// PoolEntry lists the colors of the not-yet-placed pieces of one size, in
// removal order.
type PoolEntry struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Colors []int `json:"colors"`
}

type Definition struct {
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Blocked []Cell      `json:"blocked,omitempty"`
	Fixed   []Placement `json:"fixed,omitempty"`
	Pool    []PoolEntry `json:"pool"`
}

// Validate checks the structural invariants a definition must satisfy before
// it can be built: positive dimensions, colors within the printable range
// and unique across the whole definition, cells within bounds. An area
// mismatch between the pieces and the open cells is only logged, not
// rejected: the solver declares success on pool exhaustion and does not
// require full coverage.
func (d Definition) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("invalid board dimensions %dx%d", d.Width, d.Height)
	}
	for _, c := range d.Blocked {
		if c.X < 0 || c.X >= d.Width || c.Y < 0 || c.Y >= d.Height {
			return fmt.Errorf("blocked cell %d:%d outside %dx%d board", c.X, c.Y, d.Width, d.Height)
		}
	}

	seen := map[int]bool{}
	claim := func(color int) error {
		if color < 1 || color > 26 {
			return fmt.Errorf("color %d out of range 1..26", color)
		}
		if seen[color] {
			return fmt.Errorf("color %d used twice", color)
		}
		seen[color] = true
		return nil
	}

	for _, f := range d.Fixed {
		if f.Width <= 0 || f.Height <= 0 {
			return fmt.Errorf("invalid fixed piece size %dx%d", f.Width, f.Height)
		}
		if err := claim(f.Color); err != nil {
			return err
		}
	}
	for _, e := range d.Pool {
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("invalid pool piece size %dx%d", e.Width, e.Height)
		}
		if len(e.Colors) == 0 {
			return fmt.Errorf("pool entry %dx%d has no colors", e.Width, e.Height)
		}
		for _, color := range e.Colors {
			if err := claim(color); err != nil {
				return err
			}
		}
	}

	if open, pieces := d.openCells(), d.pieceArea(); open != pieces {
		rectpack.Log.WithFields(logrus.Fields{
			"openCells": open,
			"pieceArea": pieces,
		}).Warn("piece area does not balance open cells; a full tiling cannot exist")
	}

	return nil
}

func (d Definition) openCells() int {
	n := d.Width*d.Height - len(d.Blocked)
	for _, f := range d.Fixed {
		n -= f.Width * f.Height
	}
	return n
}

func (d Definition) pieceArea() (n int) {
	for _, e := range d.Pool {
		n += e.Width * e.Height * len(e.Colors)
	}
	return
}

// Build produces the initial search state: a board with blocked cells and
// fixed pieces baked in, and the full piece pool. Placement conflicts among
// blocked cells and fixed pieces surface as the board's own placement
// errors.
func (d Definition) Build() (rectpack.Board, rectpack.Pool, error) {
	board := rectpack.NewBoard(d.Width, d.Height)

	hole := rectpack.Piece{Size: rectpack.Size{W: 1, H: 1}, Color: rectpack.Blocked}
	for _, c := range d.Blocked {
		if err := board.Place(hole, c.X, c.Y); err != nil {
			return rectpack.Board{}, nil, fmt.Errorf("blocked cell %d:%d: %w", c.X, c.Y, err)
		}
	}

	for _, f := range d.Fixed {
		piece := rectpack.Piece{
			Size:  rectpack.Size{W: f.Width, H: f.Height},
			Color: rectpack.Color(f.Color),
		}
		if err := board.Place(piece, f.X, f.Y); err != nil {
			return rectpack.Board{}, nil, fmt.Errorf("fixed piece %s at %d:%d: %w", piece.Size, f.X, f.Y, err)
		}
	}

	pool := rectpack.Pool{}
	for _, e := range d.Pool {
		size := rectpack.Size{W: e.Width, H: e.Height}
		for _, color := range e.Colors {
			pool[size] = append(pool[size], rectpack.Color(color))
		}
	}

	return board, pool, nil
}

// Hash returns a stable hex key identifying this definition, used to cache
// solutions. Definitions marshal with a fixed field order, so equal
// definitions hash equally.
func (d Definition) Hash() string {
	b, err := json.Marshal(d)
	if err != nil {
		panic(err) // a Definition always marshals
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Load reads a JSON definition file.
func Load(path string) (Definition, error) {
	var d Definition
	b, err := os.ReadFile(path)
	if err != nil {
		return d, err
	}
	if err := json.Unmarshal(b, &d); err != nil {
		return d, fmt.Errorf("unable to parse %s: %w", path, err)
	}
	return d, nil
}
