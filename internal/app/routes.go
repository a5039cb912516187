package app

import (
	"github.com/vancomm/rectpack-server/internal/handlers"
)

func (a *App) loadRoutes() {
	solver := handlers.NewSolver(a.log, a.store)

	a.router.HandleFunc("POST /solve", solver.Solve)
	a.router.HandleFunc("GET /puzzle/default", solver.DefaultPuzzle)
}
