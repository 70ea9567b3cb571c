package scramble

import "testing"

func TestRandomLength(t *testing.T) {
	moves := Random(14)
	if len(moves) != 14 {
		t.Fatalf("expected 14 moves, got %d", len(moves))
	}
}

func TestRandomZeroOrNegativeReturnsEmpty(t *testing.T) {
	if len(Random(0)) != 0 {
		t.Error("expected no moves for n = 0")
	}
	if len(Random(-5)) != 0 {
		t.Error("expected no moves for negative n")
	}
}

func TestRandomNeverRepeatsFace(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		moves := Random(50)
		for i := 1; i < len(moves); i++ {
			if moves[i].Face == moves[i-1].Face {
				t.Fatalf("move %d repeats face of move %d: %v", i, i-1, moves)
			}
		}
	}
}
