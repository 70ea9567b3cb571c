// Package cube implements a compact 3x3x3 Rubik's Cube state and the move
// operator the rest of the solver is built on.
package cube

// Face identifies one of the six faces of the cube.
type Face uint8

// The six faces, in the fixed order used throughout the solver: tie-breaking
// in the IDA* searcher and the enumeration order of AllMoves both depend on
// this exact sequence.
const (
	U Face = iota
	D
	F
	B
	L
	R
)

// NumFaces is the number of distinct faces.
const NumFaces = 6

var faceNames = [NumFaces]byte{'U', 'D', 'F', 'B', 'L', 'R'}

// String returns the single-letter notation for the face.
func (f Face) String() string {
	if int(f) >= len(faceNames) {
		return "?"
	}
	return string(faceNames[f])
}

// Move is a quarter-, half-, or three-quarter clockwise turn of one face.
// Turns is in {1, 2, 3}; 3 is equivalent to a single counter-clockwise turn.
type Move struct {
	Face  Face
	Turns uint8
}

// String returns standard cube notation: X, X2, or X'.
func (m Move) String() string {
	switch m.Turns % 4 {
	case 2:
		return m.Face.String() + "2"
	case 3:
		return m.Face.String() + "'"
	default:
		return m.Face.String()
	}
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Turns: (4 - m.Turns%4) % 4}
}

// AllMoves is the fixed-order universe of the 18 legal moves: face order
// (U, D, F, B, L, R) by turns (1, 2, 3). The PDB builder expands moves in
// this order and the IDA* searcher's tie-breaking relies on it.
var AllMoves = buildAllMoves()

func buildAllMoves() [18]Move {
	var mvs [18]Move
	i := 0
	for f := Face(0); f < NumFaces; f++ {
		for t := uint8(1); t <= 3; t++ {
			mvs[i] = Move{Face: f, Turns: t}
			i++
		}
	}
	return mvs
}

// Move tables: static ground truth for how a 90-degree turn of each face
// permutes edge and corner cubicles and twists their orientation. Values are
// taken directly from the reference cube engine this solver was derived
// from; a quarter turn of face f sends the cubie sitting at cubicle
// edgeCycles[f][i] into cubicle edgeCycles[f][(i+1)%4], adding
// edgeOrientDelta[f][(i+1)%4] (mod 2) to its orientation flag. Corners work
// the same way with a mod-3 twist.
var edgeCycles = [NumFaces][4]uint8{
	U: {0, 1, 2, 3},
	D: {4, 5, 6, 7},
	F: {2, 6, 10, 7},
	B: {0, 5, 8, 4},
	L: {3, 7, 11, 4},
	R: {1, 6, 9, 5},
}

var cornerCycles = [NumFaces][4]uint8{
	U: {0, 1, 2, 3},
	D: {4, 5, 6, 7},
	F: {1, 5, 6, 2},
	B: {0, 3, 7, 4},
	L: {0, 4, 5, 1},
	R: {2, 6, 7, 3},
}

// edgeOrientDelta[f][i] is the flip (0 or 1) applied to the edge rotating
// into position i of face f's cycle. Only F and B flip edges.
var edgeOrientDelta = [NumFaces][4]uint8{
	U: {0, 0, 0, 0},
	D: {0, 0, 0, 0},
	F: {1, 0, 1, 0},
	B: {1, 0, 1, 0},
	L: {0, 0, 0, 0},
	R: {0, 0, 0, 0},
}

// cornerOrientDelta[f][i] is the twist (0, 1, or 2) applied to the corner
// rotating into position i of face f's cycle. U and D never twist; the four
// side faces alternate (1, 2, 1, 2) or (2, 1, 2, 1) around their cycle.
var cornerOrientDelta = [NumFaces][4]uint8{
	U: {0, 0, 0, 0},
	D: {0, 0, 0, 0},
	F: {1, 2, 1, 2},
	B: {2, 1, 2, 1},
	L: {1, 2, 1, 2},
	R: {2, 1, 2, 1},
}
