package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/rectpack-server/internal/handlers"
	"github.com/vancomm/rectpack-server/internal/puzzle"
)

func newTestSolver() *handlers.Solver {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return handlers.NewSolver(log, nil)
}

func postSolve(t *testing.T, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := newTestSolver()
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Solve(w, r)
	return w
}

func TestSolveSolvable(t *testing.T) {
	w := postSolve(t, "/solve", `{
		"width": 2, "height": 2,
		"pool": [{"width": 2, "height": 1, "colors": [1, 2]}]
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var dto handlers.SolutionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.True(t, dto.Solved)
	assert.Equal(t, "aa\nbb\n", dto.Grid)
	require.NotNil(t, dto.Metrics)
	assert.Positive(t, dto.Metrics.Branches)
}

func TestSolveTextFormat(t *testing.T) {
	w := postSolve(t, "/solve?format=text", `{
		"width": 2, "height": 2,
		"pool": [{"width": 2, "height": 1, "colors": [1, 2]}]
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "aa\nbb\n", w.Body.String())
}

func TestSolveExhausted(t *testing.T) {
	w := postSolve(t, "/solve", `{
		"width": 2, "height": 2,
		"pool": [{"width": 3, "height": 1, "colors": [1]}]
	}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var dto handlers.SolutionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.False(t, dto.Solved)
	assert.Empty(t, dto.Grid)
}

func TestSolveExhaustedTextFormat(t *testing.T) {
	w := postSolve(t, "/solve?format=text", `{
		"width": 2, "height": 2,
		"pool": [{"width": 3, "height": 1, "colors": [1]}]
	}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "no solution found\n", w.Body.String())
}

func TestSolveRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "width=7"},
		{"zero dimensions", `{"width": 0, "height": 7, "pool": []}`},
		{"color out of range", `{
			"width": 2, "height": 1,
			"pool": [{"width": 2, "height": 1, "colors": [99]}]
		}`},
		{"overlapping fixed pieces", `{
			"width": 4, "height": 4,
			"fixed": [
				{"width": 2, "height": 2, "color": 1, "x": 0, "y": 0},
				{"width": 2, "height": 2, "color": 2, "x": 1, "y": 1}
			],
			"pool": [{"width": 2, "height": 1, "colors": [3]}]
		}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := postSolve(t, "/solve", test.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDefaultPuzzle(t *testing.T) {
	h := newTestSolver()
	r := httptest.NewRequest(http.MethodGet, "/puzzle/default", nil)
	w := httptest.NewRecorder()
	h.DefaultPuzzle(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var def puzzle.Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &def))
	assert.Equal(t, puzzle.Default(), def)
}
