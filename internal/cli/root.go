// Package cli implements the command-line interface for cubesolve.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HeathKnowles/rubik-ca/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolve",
	Short: "An IDA* solver for the 3x3x3 Rubik's cube",
	Long: `cubesolve searches for short solutions to a scrambled Rubik's cube using
iterative deepening A* guided by three pattern databases (edge orientation,
corner orientation, and E-slice occupancy).

Scramble a cube, solve it, and keep a history of past attempts.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubik-ca/history.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from flag or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return "" // Will use default
}

func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
