package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SolveRecord represents one solve request/response pair in the database.
type SolveRecord struct {
	SolveID          string
	CreatedAt        time.Time
	Scramble         string
	Solution         string
	Solved           bool
	MoveCount        int
	NodesVisited     int
	ThresholdReached int
	ElapsedMs        int64
}

// SolveRepository provides CRUD operations for solve history.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a completed solve attempt and returns its generated ID.
func (r *SolveRepository) Create(rec SolveRecord) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble, solution, solved, move_count, nodes_visited, threshold_reached, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), rec.Scramble, rec.Solution, boolToInt(rec.Solved),
		rec.MoveCount, rec.NodesVisited, rec.ThresholdReached, rec.ElapsedMs)

	if err != nil {
		return "", fmt.Errorf("failed to create solve record: %w", err)
	}

	return id, nil
}

// Get retrieves a single solve record by ID. It returns (nil, nil) if no
// record with that ID exists.
func (r *SolveRepository) Get(solveID string) (*SolveRecord, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution, solved, move_count, nodes_visited, threshold_reached, elapsed_ms
		FROM solves WHERE solve_id = ?
	`, solveID)

	rec, err := scanSolveRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve record: %w", err)
	}
	return rec, nil
}

// List returns the most recent solve records, newest first, up to limit.
func (r *SolveRepository) List(limit int) ([]SolveRecord, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution, solved, move_count, nodes_visited, threshold_reached, elapsed_ms
		FROM solves ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solve records: %w", err)
	}
	defer rows.Close()

	var records []SolveRecord
	for rows.Next() {
		rec, err := scanSolveRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve record: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func scanSolveRecord(scan func(...any) error) (*SolveRecord, error) {
	var rec SolveRecord
	var createdAtStr string
	var solvedInt int

	if err := scan(&rec.SolveID, &createdAtStr, &rec.Scramble, &rec.Solution, &solvedInt,
		&rec.MoveCount, &rec.NodesVisited, &rec.ThresholdReached, &rec.ElapsedMs); err != nil {
		return nil, err
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	rec.CreatedAt = createdAt
	rec.Solved = solvedInt != 0

	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
