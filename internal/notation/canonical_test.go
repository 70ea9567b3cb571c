package notation

import (
	"testing"

	"github.com/HeathKnowles/rubik-ca/internal/cube"
)

func TestParseFormatRoundTrip(t *testing.T) {
	tokens := []string{"U", "U2", "U'", "D", "D2", "D'", "F", "F2", "F'", "B", "B2", "B'", "L", "L2", "L'", "R", "R2", "R'"}
	for _, tok := range tokens {
		m, err := Parse(tok)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tok, err)
		}
		if got := Format(m); got != tok {
			t.Errorf("Format(Parse(%q)) = %q, want %q", tok, got, tok)
		}
	}
}

func TestParseRejectsUnknownFace(t *testing.T) {
	if _, err := Parse("X"); err == nil {
		t.Error("Parse(\"X\") should return an error")
	}
}

func TestParseRejectsBadSuffix(t *testing.T) {
	if _, err := Parse("R3"); err == nil {
		t.Error("Parse(\"R3\") should return an error")
	}
}

func TestParseSequenceIgnoresExtraWhitespace(t *testing.T) {
	moves, err := ParseSequence("  R   U'  F2 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []cube.Move{{Face: cube.R, Turns: 1}, {Face: cube.U, Turns: 3}, {Face: cube.F, Turns: 2}}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestParseSequenceReportsFirstBadToken(t *testing.T) {
	if _, err := ParseSequence("R U X2"); err == nil {
		t.Error("ParseSequence should error on an invalid token")
	}
}

func TestFormatSequenceEmpty(t *testing.T) {
	if got := FormatSequence(nil); got != "" {
		t.Errorf("FormatSequence(nil) = %q, want empty string", got)
	}
}
