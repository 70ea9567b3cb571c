// Package solver ties together the cube state, pattern databases, and IDA*
// search into the top-level entry points used by the CLI.
package solver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/HeathKnowles/rubik-ca/internal/cube"
	"github.com/HeathKnowles/rubik-ca/internal/notation"
	"github.com/HeathKnowles/rubik-ca/internal/pdb"
	"github.com/HeathKnowles/rubik-ca/internal/search"
)

// Config controls pattern database depth and search limits.
type Config struct {
	PDBMaxDepth      int
	NodeLimit        int
	ThresholdCeiling int
}

// DefaultConfig matches the limits described for the reference solver.
var DefaultConfig = Config{
	PDBMaxDepth:      14,
	NodeLimit:        search.DefaultConfig.NodeLimit,
	ThresholdCeiling: search.DefaultConfig.ThresholdCeiling,
}

// Stats reports how a solve was found.
type Stats struct {
	NodesVisited     int
	ThresholdReached int
	MoveCount        int
	Elapsed          time.Duration
}

// Solver holds lazily-built pattern databases so repeated solves don't pay
// the build cost twice.
type Solver struct {
	cfg Config

	mu     sync.Mutex
	tables pdb.Tables
	built  bool
}

// New creates a solver with the given configuration. Pattern databases are
// built on first use, not at construction time.
func New(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

func (s *Solver) tablesFor() pdb.Tables {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.built {
		s.tables = pdb.BuildTables(s.cfg.PDBMaxDepth)
		s.built = true
	}
	return s.tables
}

// SolveState searches for a solution starting from the given cube state. It
// rejects states that fail parity validation before spending any search
// effort on them.
func (s *Solver) SolveState(ctx context.Context, start cube.CubeState) ([]cube.Move, Stats, error) {
	if err := cube.ValidateParity(start); err != nil {
		return nil, Stats{}, fmt.Errorf("solver: invalid cube state: %w", err)
	}

	tables := s.tablesFor()
	searcher := search.New(tables, search.Config{
		NodeLimit:        s.cfg.NodeLimit,
		ThresholdCeiling: s.cfg.ThresholdCeiling,
	})

	begin := time.Now()
	result := searcher.Solve(ctx, start)
	elapsed := time.Since(begin)

	stats := Stats{
		NodesVisited:     result.NodesVisited,
		ThresholdReached: result.ThresholdReached,
		MoveCount:        len(result.Moves),
		Elapsed:          elapsed,
	}

	if !result.Found {
		return nil, stats, fmt.Errorf("solver: no solution found within node limit %d and threshold ceiling %d", s.cfg.NodeLimit, s.cfg.ThresholdCeiling)
	}

	return result.Moves, stats, nil
}

// Solve parses a scramble in standard notation, solves it, and returns the
// solution formatted the same way.
func (s *Solver) Solve(scramble string) (string, error) {
	return s.SolveContext(context.Background(), scramble)
}

// SolveContext is Solve with an explicit context for cancellation.
func (s *Solver) SolveContext(ctx context.Context, scramble string) (string, error) {
	sol, _, err := s.SolveWithStats(ctx, scramble)
	return sol, err
}

// SolveWithStats solves a scramble and also reports search statistics.
func (s *Solver) SolveWithStats(ctx context.Context, scramble string) (string, Stats, error) {
	moves, err := notation.ParseSequence(scramble)
	if err != nil {
		return "", Stats{}, fmt.Errorf("solver: invalid scramble: %w", err)
	}

	start := cube.ApplySequence(cube.Solved(), moves)
	solution, stats, err := s.SolveState(ctx, start)
	if err != nil {
		return "", stats, err
	}

	return notation.FormatSequence(solution), stats, nil
}

var defaultSolver = New(DefaultConfig)

// Solve is a package-level convenience wrapping a shared default Solver.
func Solve(scramble string) (string, error) {
	return defaultSolver.Solve(scramble)
}
