package rectpack

import "github.com/sirupsen/logrus"

var Log = logrus.New()

// Metrics counts search work for logging. A nil *Metrics disables
// collection; the counters never influence the search.
type Metrics struct {
	Branches   int `json:"branches"`
	Placements int `json:"placements"`
	Rejected   int `json:"rejected"`
	MaxDepth   int `json:"maxDepth"`
}

func (m *Metrics) enter(depth int) {
	if m == nil {
		return
	}
	m.Branches++
	if depth > m.MaxDepth {
		m.MaxDepth = depth
	}
}

func (m *Metrics) placement(err error) {
	if m == nil {
		return
	}
	m.Placements++
	if err != nil {
		m.Rejected++
	}
}

func (m *Metrics) Fields() logrus.Fields {
	return logrus.Fields{
		"branches":   m.Branches,
		"placements": m.Placements,
		"rejected":   m.Rejected,
		"maxDepth":   m.MaxDepth,
	}
}

// Solve runs an exhaustive depth-first backtracking search over the given
// state and returns the first fully placed board, or ok == false once every
// size and anchor combination at every depth has been tried. Exhaustion is a
// normal outcome, not an error.
//
// The search is deterministic: size groups are visited in ascending [Size.Less]
// order and anchors with x ascending in the outer loop, y in the inner. Both
// arguments are treated as read-only; every branch works on its own copies.
func Solve(board Board, pool Pool, m *Metrics) (Board, bool) {
	solved, ok := solve(board, pool, m, 0)
	if m != nil {
		Log.WithFields(m.Fields()).WithField("solved", ok).Debug("search finished")
	}
	return solved, ok
}

func solve(board Board, pool Pool, m *Metrics, depth int) (Board, bool) {
	m.enter(depth)

	/*
	 * An empty pool is the sole terminal success: every placement on the
	 * way down was already validated, so the board is returned as-is
	 * without a final coverage check.
	 */
	if pool.Empty() {
		return board, true
	}

	for _, size := range pool.Sizes() {
		rest := pool.Clone()
		piece := rest.TakeOne(size)

		maxX := board.Width() - piece.W
		maxY := board.Height() - piece.H
		if maxX < 0 || maxY < 0 {
			continue /* no anchor can fit this size */
		}

		for x := 0; x <= maxX; x++ {
			for y := 0; y <= maxY; y++ {
				next := board.Clone()
				err := next.Place(piece, x, y)
				m.placement(err)
				if err != nil {
					/*
					 * Out of bounds and collision are treated
					 * identically: abandon the branch and move to
					 * the next anchor.
					 */
					continue
				}
				if solved, ok := solve(next, rest, m, depth+1); ok {
					return solved, true
				}
			}
		}
	}

	return Board{}, false
}
