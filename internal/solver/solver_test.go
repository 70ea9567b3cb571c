package solver

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/HeathKnowles/rubik-ca/internal/cube"
	"github.com/HeathKnowles/rubik-ca/internal/notation"
)

func TestSolveAlreadySolvedScramble(t *testing.T) {
	s := New(Config{PDBMaxDepth: 8, NodeLimit: 50_000_000, ThresholdCeiling: 30})
	sol, err := s.Solve("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(sol) != "" {
		t.Errorf("expected empty solution for empty scramble, got %q", sol)
	}
}

func TestSolveRoundTrip(t *testing.T) {
	s := New(Config{PDBMaxDepth: 8, NodeLimit: 50_000_000, ThresholdCeiling: 30})
	scramble := "R U R' U'"
	sol, stats, err := s.SolveWithStats(context.Background(), scramble)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.MoveCount != len(strings.Fields(sol)) {
		t.Errorf("stats.MoveCount %d does not match solution length %d", stats.MoveCount, len(strings.Fields(sol)))
	}

	scrambleMoves, err := notation.ParseSequence(scramble)
	if err != nil {
		t.Fatal(err)
	}
	solutionMoves, err := notation.ParseSequence(sol)
	if err != nil {
		t.Fatal(err)
	}

	end := cube.ApplySequence(cube.ApplySequence(cube.Solved(), scrambleMoves), solutionMoves)
	if !end.IsSolved() {
		t.Errorf("applying solution %q to scramble %q did not solve the cube", sol, scramble)
	}
}

func TestSolveRejectsInvalidNotation(t *testing.T) {
	s := New(Config{PDBMaxDepth: 8, NodeLimit: 50_000_000, ThresholdCeiling: 30})
	if _, err := s.Solve("Q2"); err == nil {
		t.Error("expected an error for an unrecognized face letter")
	}
}

func TestSharedTablesAreBuiltOnce(t *testing.T) {
	s := New(Config{PDBMaxDepth: 6, NodeLimit: 50_000_000, ThresholdCeiling: 30})
	first := s.tablesFor()
	second := s.tablesFor()
	if reflect.ValueOf(first.Edge).Pointer() != reflect.ValueOf(second.Edge).Pointer() {
		t.Error("expected tablesFor to reuse the same built tables")
	}
}
