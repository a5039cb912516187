package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/rectpack-server/internal/config"
	"github.com/vancomm/rectpack-server/internal/middleware"
	"github.com/vancomm/rectpack-server/internal/repository"
)

type App struct {
	log    *logrus.Logger
	config config.Config
	router *http.ServeMux
	store  *repository.SolutionStore
}

func New(log *logrus.Logger, cfg config.Config) *App {
	return &App{
		log:    log,
		config: cfg,
		router: http.NewServeMux(),
	}
}

// Start connects the optional solution store, wires routes and serves until
// ctx is canceled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	if a.config.Postgres != nil {
		store, err := repository.NewSolutionStore(ctx, a.config.Postgres.DbUrl())
		if err != nil {
			return fmt.Errorf("unable to create connection pool: %w", err)
		}
		if err := store.Ping(ctx); err != nil {
			return fmt.Errorf("unable to ping database: %w", err)
		}
		a.store = store
		defer store.Close()
	}

	a.loadRoutes()

	server := &http.Server{
		Addr: a.config.Addr,
		Handler: middleware.Wrap(
			a.router,
			middleware.Cors(),
			middleware.Logging(a.log),
		),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.Infof("ready to serve @ %s", a.config.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
