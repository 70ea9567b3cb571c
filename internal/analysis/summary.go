// Package analysis reduces solve history into aggregate statistics.
package analysis

import (
	"sort"

	"github.com/HeathKnowles/rubik-ca/internal/storage"
)

// Summary contains aggregate statistics across a set of solve records.
type Summary struct {
	Count              int     `json:"count"`
	SolvedCount        int     `json:"solved_count"`
	MeanMoveCount      float64 `json:"mean_move_count"`
	MedianMoveCount     float64 `json:"median_move_count"`
	MeanNodesVisited   float64 `json:"mean_nodes_visited"`
	MaxThresholdReached int    `json:"max_threshold_reached"`
	MeanElapsedMs      float64 `json:"mean_elapsed_ms"`
}

// Summarize reduces a set of solve records to aggregate statistics.
// Unsolved records (where the search exhausted its budget) still count
// toward Count but are excluded from the move-count statistics.
func Summarize(records []storage.SolveRecord) Summary {
	var s Summary
	s.Count = len(records)
	if s.Count == 0 {
		return s
	}

	var moveCounts []int
	var totalNodes, totalElapsed int64

	for _, r := range records {
		totalNodes += int64(r.NodesVisited)
		totalElapsed += r.ElapsedMs
		if r.ThresholdReached > s.MaxThresholdReached {
			s.MaxThresholdReached = r.ThresholdReached
		}
		if r.Solved {
			s.SolvedCount++
			moveCounts = append(moveCounts, r.MoveCount)
		}
	}

	s.MeanNodesVisited = float64(totalNodes) / float64(s.Count)
	s.MeanElapsedMs = float64(totalElapsed) / float64(s.Count)

	if len(moveCounts) > 0 {
		var sum int
		for _, mc := range moveCounts {
			sum += mc
		}
		s.MeanMoveCount = float64(sum) / float64(len(moveCounts))
		s.MedianMoveCount = median(moveCounts)
	}

	return s
}

func median(values []int) float64 {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
