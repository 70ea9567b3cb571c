// Package notation converts between cube.Move values and standard cube
// notation tokens (R, R', R2, ...).
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HeathKnowles/rubik-ca/internal/cube"
)

// ErrInvalidToken is returned by Parse when a token's face letter is not one
// of U, D, F, B, L, R (either case), or its suffix is not empty, "2", "'",
// or "`" (accepted as an alternative prime mark).
var ErrInvalidToken = errors.New("notation: invalid move token")

// Parse parses a single standard-notation token into a cube.Move.
// Examples: R, R', R2, u, d2. Unlike the permissive historical behaviour of
// silently defaulting an unrecognised face to U, Parse rejects malformed
// tokens: spec.md §9 flags that default as a likely bug and recommends
// rejecting it.
func Parse(token string) (cube.Move, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return cube.Move{}, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	var face cube.Face
	switch token[0] {
	case 'U', 'u':
		face = cube.U
	case 'D', 'd':
		face = cube.D
	case 'F', 'f':
		face = cube.F
	case 'B', 'b':
		face = cube.B
	case 'L', 'l':
		face = cube.L
	case 'R', 'r':
		face = cube.R
	default:
		return cube.Move{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	turns := uint8(1)
	if suffix := token[1:]; suffix != "" {
		switch suffix {
		case "2":
			turns = 2
		case "'", "`":
			turns = 3
		default:
			return cube.Move{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
		}
	}

	return cube.Move{Face: face, Turns: turns}, nil
}

// ParseSequence parses a whitespace-separated sequence of move tokens.
// Empty tokens (repeated whitespace) are ignored, per spec.md §6. The first
// malformed token is reported as an error naming its position.
func ParseSequence(s string) ([]cube.Move, error) {
	fields := strings.Fields(s)
	moves := make([]cube.Move, 0, len(fields))
	for i, tok := range fields {
		m, err := Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Format returns the standard notation string for a single move.
func Format(m cube.Move) string {
	return m.String()
}

// FormatSequence formats a slice of moves as a trailing-space-separated
// string, matching the external interface contract in spec.md §6.
func FormatSequence(moves []cube.Move) string {
	if len(moves) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range moves {
		b.WriteString(m.String())
		b.WriteByte(' ')
	}
	return b.String()
}
