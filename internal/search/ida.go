// Package search implements the IDA* (iterative-deepening A*) searcher that
// finds a short move sequence from a start state to the solved cube, using
// pattern-database lookups as an admissible heuristic and static move
// pruning to cut the branching factor.
package search

import (
	"context"

	"github.com/HeathKnowles/rubik-ca/internal/cube"
	"github.com/HeathKnowles/rubik-ca/internal/pdb"
)

// Config bounds a single search: NodeLimit caps the total DFS nodes visited
// across all thresholds (the cancellation mechanism, spec.md §5);
// ThresholdCeiling caps how deep iterative deepening will go before giving
// up.
type Config struct {
	NodeLimit        int
	ThresholdCeiling int
}

// DefaultConfig matches spec.md §6's defaults.
var DefaultConfig = Config{
	NodeLimit:        50_000_000,
	ThresholdCeiling: 30,
}

// nodeCheckInterval is how often the DFS checks ctx for cancellation. The
// hot loop stays free of a select on every node; spec.md's node_limit check
// still happens every node.
const nodeCheckInterval = 4096

// Result is the outcome of a single Solve call.
type Result struct {
	Moves            []cube.Move
	Found            bool
	NodesVisited     int
	ThresholdReached int
}

// Searcher runs IDA* against a fixed set of pattern databases.
type Searcher struct {
	tables pdb.Tables
	cfg    Config
}

// New builds a Searcher over the given PDBs and config.
func New(tables pdb.Tables, cfg Config) *Searcher {
	return &Searcher{tables: tables, cfg: cfg}
}

type searchState struct {
	ctx     context.Context
	nodes   int
	limit   int
	path    []cube.Move
	aborted bool
}

// Solve runs iterative deepening from start to the solved cube, returning
// the first solution found at the smallest admitting threshold. Found is
// false if node_limit was exhausted or threshold exceeded ThresholdCeiling
// (spec.md §4.F) — in both cases Moves is empty.
func (s *Searcher) Solve(ctx context.Context, start cube.CubeState) Result {
	threshold := s.tables.Heuristic(start)
	st := &searchState{ctx: ctx, limit: s.cfg.NodeLimit}

	for threshold <= s.cfg.ThresholdCeiling {
		st.nodes = 0
		st.path = st.path[:0]
		if s.dfs(st, start, 0, threshold) {
			return Result{
				Moves:            append([]cube.Move(nil), st.path...),
				Found:            true,
				NodesVisited:     st.nodes,
				ThresholdReached: threshold,
			}
		}
		if st.aborted {
			break
		}
		threshold++
	}

	return Result{Found: false, NodesVisited: st.nodes, ThresholdReached: threshold}
}

// dfs is the bounded depth-first search at a fixed threshold. It returns
// true the moment it finds a path from c to the solved state with
// g + h(c) <= threshold at every node along the way.
func (s *Searcher) dfs(st *searchState, c cube.CubeState, g, threshold int) bool {
	st.nodes++
	if st.nodes > st.limit {
		st.aborted = true
		return false
	}
	if st.nodes%nodeCheckInterval == 0 {
		select {
		case <-st.ctx.Done():
			st.aborted = true
			return false
		default:
		}
	}

	f := g + s.tables.Heuristic(c)
	if f > threshold {
		return false
	}
	if c.IsSolved() {
		return true
	}

	for _, m := range cube.AllMoves {
		if prune(st.path, m) {
			continue
		}
		next := cube.Apply(c, m.Face, m.Turns)
		st.path = append(st.path, m)
		if s.dfs(st, next, g+1, threshold) {
			return true
		}
		st.path = st.path[:len(st.path)-1]
		if st.aborted {
			return false
		}
	}
	return false
}

// prune implements the move-pruning rules of spec.md §4.F: reject a
// candidate move that repeats the previous move's face (always reducible to
// a single move or the identity), that forms an X Y X' face sandwich with
// the same face cancelling two moves ago, or that performs an opposite-face
// move out of canonical order (opposite faces commute, so only the
// higher-indexed face may follow the lower one).
func prune(path []cube.Move, m cube.Move) bool {
	if len(path) == 0 {
		return false
	}
	last := path[len(path)-1]
	if last.Face == m.Face {
		return true
	}
	if len(path) >= 2 && path[len(path)-2].Face == m.Face && (last.Turns+m.Turns)%4 == 0 {
		return true
	}
	if isOppositeFace(last.Face, m.Face) && m.Face < last.Face {
		return true
	}
	return false
}

// isOppositeFace reports whether a and b are opposite faces (U/D, F/B,
// L/R). The face enumeration pairs opposites as consecutive indices, so
// XOR-ing with 1 maps a face to its opposite.
func isOppositeFace(a, b cube.Face) bool {
	return a^1 == b
}
