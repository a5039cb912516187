package puzzle_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/rectpack-server/internal/puzzle"
	"github.com/vancomm/rectpack-server/internal/rectpack"
)

func TestDefaultIsBalanced(t *testing.T) {
	d := puzzle.Default()
	require.NoError(t, d.Validate())

	open := d.Width*d.Height - len(d.Blocked)
	for _, f := range d.Fixed {
		open -= f.Width * f.Height
	}
	pieces := 0
	for _, e := range d.Pool {
		pieces += e.Width * e.Height * len(e.Colors)
	}

	assert.Equal(t, open, pieces)
}

func TestBuildDefault(t *testing.T) {
	board, pool, err := puzzle.Default().Build()
	require.NoError(t, err)

	assert.Equal(t, 7, board.Width())
	assert.Equal(t, 7, board.Height())
	assert.Equal(t, rectpack.Blocked, board.At(0, 6))
	assert.Equal(t, rectpack.Blocked, board.At(3, 6))
	assert.Equal(t, rectpack.Blocked, board.At(6, 6))
	assert.Equal(t, rectpack.Color(9), board.At(2, 0))
	assert.Equal(t, rectpack.Color(9), board.At(4, 1))
	assert.Equal(t, rectpack.Empty, board.At(0, 0))
	assert.Equal(t, 5, pool.Count())
}

func TestSolveDefault(t *testing.T) {
	board, pool, err := puzzle.Default().Build()
	require.NoError(t, err)

	solved, ok := rectpack.Solve(board, pool, nil)
	require.True(t, ok)

	want := strings.Join([]string{
		"cciiidd",
		"cciiidd",
		"cceeedd",
		"cceeedd",
		"cceeedd",
		"cceeedd",
		"#aa#bb#",
	}, "\n") + "\n"
	assert.Equal(t, want, solved.String())
}

func TestValidateRejects(t *testing.T) {
	base := puzzle.Default()

	tests := []struct {
		name   string
		mutate func(*puzzle.Definition)
	}{
		{"zero width", func(d *puzzle.Definition) { d.Width = 0 }},
		{"blocked cell out of bounds", func(d *puzzle.Definition) {
			d.Blocked = append(d.Blocked, puzzle.Cell{X: 7, Y: 0})
		}},
		{"color out of range", func(d *puzzle.Definition) {
			d.Pool[0].Colors = []int{27}
		}},
		{"duplicate color", func(d *puzzle.Definition) {
			d.Pool[0].Colors = []int{1, 1}
		}},
		{"empty pool entry", func(d *puzzle.Definition) {
			d.Pool = append(d.Pool, puzzle.PoolEntry{Width: 1, Height: 1})
		}},
		{"fixed piece with zero height", func(d *puzzle.Definition) {
			d.Fixed[0].Height = 0
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := base
			d.Blocked = append([]puzzle.Cell(nil), base.Blocked...)
			d.Fixed = append([]puzzle.Placement(nil), base.Fixed...)
			d.Pool = make([]puzzle.PoolEntry, len(base.Pool))
			copy(d.Pool, base.Pool)

			test.mutate(&d)
			assert.Error(t, d.Validate())
		})
	}
}

func TestBuildRejectsOverlap(t *testing.T) {
	d := puzzle.Default()
	d.Fixed = append(d.Fixed, puzzle.Placement{
		Width: 2, Height: 2, Color: 10, X: 3, Y: 1,
	})

	_, _, err := d.Build()
	require.Error(t, err)

	var filled rectpack.FilledCellError
	assert.ErrorAs(t, err, &filled)
}

func TestHash(t *testing.T) {
	a := puzzle.Default()
	b := puzzle.Default()
	assert.Equal(t, a.Hash(), b.Hash())

	b.Pool[0].Colors = []int{2, 1}
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.json")
	payload := `{
		"width": 2, "height": 1,
		"pool": [{"width": 2, "height": 1, "colors": [1]}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	d, err := puzzle.Load(path)
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	board, pool, err := d.Build()
	require.NoError(t, err)

	solved, ok := rectpack.Solve(board, pool, nil)
	require.True(t, ok)
	assert.Equal(t, "aa\n", solved.String())
}
