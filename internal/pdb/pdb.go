// Package pdb builds the pattern databases the IDA* searcher uses as an
// admissible heuristic: abstraction extractors that project a full cube
// state onto a small key, and a breadth-first builder that floods outward
// from the solved cube recording the minimum move count observed for each
// abstracted key.
package pdb

import (
	"github.com/HeathKnowles/rubik-ca/internal/cube"
)

// EdgeOriKey is the abstraction key for the edge-orientation PDB: the
// 12-element edge-orientation array.
type EdgeOriKey [12]uint8

// CornerOriKey is the abstraction key for the corner-orientation PDB: the
// 8-element corner-orientation array.
type CornerOriKey [8]uint8

// ESliceKey is the abstraction key for the E-slice PDB: which of the 12
// edge cubicles currently hold a middle-layer edge (home index 4..7).
type ESliceKey [12]bool

// EdgeOri projects a state onto its edge-orientation key.
func EdgeOri(s cube.CubeState) EdgeOriKey {
	return EdgeOriKey(s.EdgeOrient())
}

// CornerOri projects a state onto its corner-orientation key.
func CornerOri(s cube.CubeState) CornerOriKey {
	return CornerOriKey(s.CornerOrient())
}

// ESlice projects a state onto its E-slice occupancy key: entry i is true
// iff the edge sitting at cubicle i belongs at home index 4..7.
func ESlice(s cube.CubeState) ESliceKey {
	var key ESliceKey
	for i, home := range s.Edges() {
		key[i] = home >= 4 && home <= 7
	}
	return key
}

type queueEntry struct {
	state cube.CubeState
	depth int
}

// Build floods outward from the solved cube in full-state space, breadth
// first, recording the minimum move count seen for every key the extractor
// produces. Expansion happens in full-state space while the returned map is
// keyed by abstraction (spec.md §4.D): this is not a strict BFS over the
// abstraction graph, but with maxDepth large enough relative to the
// abstraction's diameter (the default 14), every reachable key is still
// discovered at its true minimum depth.
func Build[K comparable](extractor func(cube.CubeState) K, maxDepth int) map[K]int {
	start := cube.Solved()
	table := make(map[K]int)
	table[extractor(start)] = 0

	queue := []queueEntry{{state: start, depth: 0}}
	for head := 0; head < len(queue); head++ {
		entry := queue[head]
		if entry.depth == maxDepth {
			continue
		}
		for _, m := range cube.AllMoves {
			next := cube.Apply(entry.state, m.Face, m.Turns)
			k := extractor(next)
			if _, seen := table[k]; seen {
				continue
			}
			table[k] = entry.depth + 1
			queue = append(queue, queueEntry{state: next, depth: entry.depth + 1})
		}
	}
	return table
}

// Tables holds the three pattern databases an IDA* search needs: edge
// orientation, corner orientation, and E-slice occupancy.
type Tables struct {
	Edge   map[EdgeOriKey]int
	Corner map[CornerOriKey]int
	ESlice map[ESliceKey]int
}

// BuildTables constructs all three PDBs at the given depth. maxDepth = 14 is
// the default per spec.md §6; all three tables fit comfortably in memory at
// that depth.
func BuildTables(maxDepth int) Tables {
	return Tables{
		Edge:   Build(EdgeOri, maxDepth),
		Corner: Build(CornerOri, maxDepth),
		ESlice: Build(ESlice, maxDepth),
	}
}

// Heuristic returns an admissible lower bound on the number of moves needed
// to solve s: the maximum of the three PDB lookups, substituting 0 for any
// key absent from its table (spec.md §4.E).
func (t Tables) Heuristic(s cube.CubeState) int {
	h := t.Edge[EdgeOri(s)]
	if v := t.Corner[CornerOri(s)]; v > h {
		h = v
	}
	if v := t.ESlice[ESlice(s)]; v > h {
		h = v
	}
	return h
}
