// Package scramble generates random move sequences for scrambling a cube.
package scramble

import (
	"math/rand/v2"

	"github.com/HeathKnowles/rubik-ca/internal/cube"
)

// Random returns a sequence of n random moves drawn from cube.AllMoves. It
// never repeats the immediately preceding move's face, matching the
// reference scrambler, though it does allow immediately repeating the same
// axis on the opposite face (e.g. U followed by D).
func Random(n int) []cube.Move {
	if n <= 0 {
		return nil
	}

	moves := make([]cube.Move, 0, n)
	last := cube.Face(255)

	for i := 0; i < n; i++ {
		var m cube.Move
		for {
			m = cube.AllMoves[rand.IntN(len(cube.AllMoves))]
			if m.Face != last {
				break
			}
		}
		last = m.Face
		moves = append(moves, m)
	}

	return moves
}
