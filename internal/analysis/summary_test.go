package analysis

import (
	"testing"

	"github.com/HeathKnowles/rubik-ca/internal/storage"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 {
		t.Errorf("expected count 0, got %d", s.Count)
	}
}

func TestSummarizeMixedRecords(t *testing.T) {
	records := []storage.SolveRecord{
		{Solved: true, MoveCount: 10, NodesVisited: 100, ThresholdReached: 5, ElapsedMs: 50},
		{Solved: true, MoveCount: 20, NodesVisited: 300, ThresholdReached: 8, ElapsedMs: 150},
		{Solved: false, MoveCount: 0, NodesVisited: 50_000_000, ThresholdReached: 30, ElapsedMs: 5000},
	}

	s := Summarize(records)
	if s.Count != 3 {
		t.Errorf("expected count 3, got %d", s.Count)
	}
	if s.SolvedCount != 2 {
		t.Errorf("expected solved count 2, got %d", s.SolvedCount)
	}
	if s.MeanMoveCount != 15 {
		t.Errorf("expected mean move count 15, got %f", s.MeanMoveCount)
	}
	if s.MedianMoveCount != 15 {
		t.Errorf("expected median move count 15, got %f", s.MedianMoveCount)
	}
	if s.MaxThresholdReached != 30 {
		t.Errorf("expected max threshold reached 30, got %d", s.MaxThresholdReached)
	}
}
