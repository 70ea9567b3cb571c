package search

import (
	"context"
	"testing"

	"github.com/HeathKnowles/rubik-ca/internal/cube"
	"github.com/HeathKnowles/rubik-ca/internal/pdb"
)

func solveMoves(t *testing.T, moves []cube.Move) Result {
	t.Helper()
	tables := pdb.BuildTables(14)
	start := cube.ApplySequence(cube.Solved(), moves)
	s := New(tables, DefaultConfig)
	return s.Solve(context.Background(), start)
}

func TestSolveAlreadySolvedReturnsEmpty(t *testing.T) {
	result := solveMoves(t, nil)
	if !result.Found {
		t.Fatal("expected a solution for an already-solved cube")
	}
	if len(result.Moves) != 0 {
		t.Errorf("expected empty solution, got %v", result.Moves)
	}
}

func TestSolveSingleMoveScramble(t *testing.T) {
	result := solveMoves(t, []cube.Move{{Face: cube.R, Turns: 1}})
	if !result.Found {
		t.Fatal("expected a solution")
	}
	end := cube.ApplySequence(cube.ApplySequence(cube.Solved(), []cube.Move{{Face: cube.R, Turns: 1}}), result.Moves)
	if !end.IsSolved() {
		t.Errorf("applying solution %v did not solve the cube", result.Moves)
	}
}

func TestSolveCorrectnessSune(t *testing.T) {
	scramble, err := notationMoves("R U R' U R U2 R'")
	if err != nil {
		t.Fatal(err)
	}
	result := solveMoves(t, scramble)
	if !result.Found {
		t.Fatal("expected a solution for the Sune scramble")
	}
	start := cube.ApplySequence(cube.Solved(), scramble)
	end := cube.ApplySequence(start, result.Moves)
	if !end.IsSolved() {
		t.Errorf("applying solution %v to Sune scramble did not solve the cube", result.Moves)
	}
}

func TestSolveHalfTurnsOnly(t *testing.T) {
	scramble, err := notationMoves("F2 B2 U2 D2 L2 R2")
	if err != nil {
		t.Fatal(err)
	}
	result := solveMoves(t, scramble)
	if !result.Found {
		t.Fatal("expected a solution")
	}
	if len(result.Moves) > 12 {
		t.Errorf("expected a solution of length <= 12, got %d: %v", len(result.Moves), result.Moves)
	}
	start := cube.ApplySequence(cube.Solved(), scramble)
	end := cube.ApplySequence(start, result.Moves)
	if !end.IsSolved() {
		t.Errorf("applying solution %v did not solve the cube", result.Moves)
	}
}

func TestNodeLimitZeroReturnsEmpty(t *testing.T) {
	tables := pdb.BuildTables(14)
	scramble := []cube.Move{{Face: cube.R, Turns: 1}, {Face: cube.U, Turns: 1}}
	start := cube.ApplySequence(cube.Solved(), scramble)
	s := New(tables, Config{NodeLimit: 0, ThresholdCeiling: 30})
	result := s.Solve(context.Background(), start)
	if result.Found {
		t.Error("expected no solution with node_limit = 0")
	}
	if len(result.Moves) != 0 {
		t.Errorf("expected empty moves, got %v", result.Moves)
	}
}

func TestPruneRejectsSameFaceRepeat(t *testing.T) {
	path := []cube.Move{{Face: cube.R, Turns: 1}}
	if !prune(path, cube.Move{Face: cube.R, Turns: 2}) {
		t.Error("expected same-face repeat to be pruned")
	}
}

func TestPruneRejectsFaceSandwich(t *testing.T) {
	path := []cube.Move{{Face: cube.R, Turns: 1}, {Face: cube.U, Turns: 1}}
	if !prune(path, cube.Move{Face: cube.R, Turns: 3}) {
		t.Error("expected R U R' sandwich to be pruned")
	}
}

func TestPruneAllowsNonCancellingSandwich(t *testing.T) {
	path := []cube.Move{{Face: cube.R, Turns: 1}, {Face: cube.U, Turns: 1}}
	if prune(path, cube.Move{Face: cube.R, Turns: 1}) {
		t.Error("R U R (not cancelling) should not be pruned")
	}
}

func TestPruneEnforcesOppositeFaceOrder(t *testing.T) {
	// D(1) after U(0): opposite faces, D > U, so D after U is the allowed
	// canonical order.
	if prune([]cube.Move{{Face: cube.U, Turns: 1}}, cube.Move{Face: cube.D, Turns: 1}) {
		t.Error("D following U should be allowed (canonical order)")
	}
	// U after D should be pruned: commuting move out of canonical order.
	if !prune([]cube.Move{{Face: cube.D, Turns: 1}}, cube.Move{Face: cube.U, Turns: 1}) {
		t.Error("U following D should be pruned (redundant with U before D)")
	}
}

// notationMoves is a tiny local helper to avoid importing the notation
// package into search's tests, keeping the dependency direction one-way.
func notationMoves(s string) ([]cube.Move, error) {
	var moves []cube.Move
	face := map[byte]cube.Face{'U': cube.U, 'D': cube.D, 'F': cube.F, 'B': cube.B, 'L': cube.L, 'R': cube.R}
	var i int
	for i < len(s) {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		if i >= len(s) {
			break
		}
		f, ok := face[s[i]]
		if !ok {
			i++
			continue
		}
		turns := uint8(1)
		i++
		if i < len(s) {
			switch s[i] {
			case '2':
				turns = 2
				i++
			case '\'':
				turns = 3
				i++
			}
		}
		moves = append(moves, cube.Move{Face: f, Turns: turns})
	}
	return moves, nil
}
