package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSolutionTable = `
CREATE TABLE IF NOT EXISTS solution (
	puzzle_hash	text 	PRIMARY KEY,
	solvable	boolean	NOT NULL,
	grid		text	NOT NULL,
	created_at 	timestamp with time zone
						DEFAULT now()
						NOT NULL
);`

var ErrNotFound = errors.New("solution not found")

// Solution is a cached search outcome for one puzzle definition. Grid holds
// the rendered board when Solvable, an empty string otherwise.
type Solution struct {
	Solvable bool
	Grid     string
}

// SolutionStore caches search results in postgres, keyed by definition
// hash. Exhaustion ("no solution") is cached too: it is the expensive
// outcome worth remembering most.
type SolutionStore struct {
	db *pgxpool.Pool
}

func NewSolutionStore(ctx context.Context, dbUrl string) (*SolutionStore, error) {
	dbconfig, err := pgxpool.ParseConfig(dbUrl)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.NewWithConfig(ctx, dbconfig)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(ctx, createSolutionTable); err != nil {
		return nil, err
	}
	return &SolutionStore{db}, nil
}

func (s *SolutionStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *SolutionStore) Close() {
	s.db.Close()
}

// Get returns the cached solution for hash, or [ErrNotFound].
func (s *SolutionStore) Get(ctx context.Context, hash string) (*Solution, error) {
	var sol Solution
	err := s.db.QueryRow(ctx, `
	SELECT solvable, grid FROM solution
	WHERE puzzle_hash = $1;`, hash,
	).Scan(&sol.Solvable, &sol.Grid)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sol, nil
}

// Put caches a solution. Two requests may race to solve the same definition;
// the loser's duplicate insert is not an error, since both computed the same
// deterministic result.
func (s *SolutionStore) Put(ctx context.Context, hash string, sol Solution) error {
	_, err := s.db.Exec(ctx, `
	INSERT INTO solution (puzzle_hash, solvable, grid)
	VALUES ($1, $2, $3);`,
		hash, sol.Solvable, sol.Grid)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return nil
	}
	return err
}
