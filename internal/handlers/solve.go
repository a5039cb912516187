package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/rectpack-server/internal/puzzle"
	"github.com/vancomm/rectpack-server/internal/rectpack"
	"github.com/vancomm/rectpack-server/internal/repository"
)

type SolveOptions struct {
	// Format selects the response body: "json" (default) or "text" for the
	// bare rendered grid.
	Format string `schema:"format"`
}

type SolutionDTO struct {
	Solved  bool              `json:"solved"`
	Grid    string            `json:"grid,omitempty"`
	Metrics *rectpack.Metrics `json:"metrics,omitempty"`
}

// Solver serves puzzle definitions and runs the search for posted ones. The
// store is optional; without it every request is solved from scratch.
type Solver struct {
	log     *logrus.Logger
	store   *repository.SolutionStore
	decoder *schema.Decoder
}

func NewSolver(log *logrus.Logger, store *repository.SolutionStore) *Solver {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &Solver{log: log, store: store, decoder: decoder}
}

// Solve handles POST /solve: the body is a JSON puzzle definition, the
// response the first solution found or an explicit "no solution" outcome
// (422, never a crash or an empty body).
func (h *Solver) Solve(w http.ResponseWriter, r *http.Request) {
	var opts SolveOptions
	if err := h.decoder.Decode(&opts, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var def puzzle.Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := def.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	hash := def.Hash()

	if h.store != nil {
		cached, err := h.store.Get(r.Context(), hash)
		if err == nil {
			h.log.WithField("hash", hash).Debug("solution cache hit")
			h.respond(w, opts, SolutionDTO{Solved: cached.Solvable, Grid: cached.Grid})
			return
		}
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.WithError(err).Error("solution cache lookup failed")
		}
	}

	board, pool, err := def.Build()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	var m rectpack.Metrics
	solved, ok := rectpack.Solve(board, pool, &m)

	dto := SolutionDTO{Solved: ok, Metrics: &m}
	if ok {
		dto.Grid = solved.String()
	}

	h.log.WithFields(m.Fields()).WithFields(logrus.Fields{
		"hash":   hash,
		"solved": ok,
	}).Info("search finished")

	if h.store != nil {
		err := h.store.Put(r.Context(), hash, repository.Solution{
			Solvable: ok,
			Grid:     dto.Grid,
		})
		if err != nil {
			h.log.WithError(err).Error("unable to cache solution")
		}
	}

	h.respond(w, opts, dto)
}

// DefaultPuzzle handles GET /puzzle/default with the built-in instance.
func (h *Solver) DefaultPuzzle(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, puzzle.Default())
}

func (h *Solver) respond(w http.ResponseWriter, opts SolveOptions, dto SolutionDTO) {
	if opts.Format == "text" {
		if !dto.Solved {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte("no solution found\n"))
			return
		}
		w.Write([]byte(dto.Grid))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if !dto.Solved {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	sendJSON(w, dto)
}
