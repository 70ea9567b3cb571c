package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HeathKnowles/rubik-ca/internal/solver"
	"github.com/HeathKnowles/rubik-ca/internal/storage"
)

var noHistory bool

var solveCmd = &cobra.Command{
	Use:   "solve <scramble...>",
	Short: "Solve a scrambled cube",
	Long: `Solve parses a scramble given in standard cube notation (e.g. "R U R' U'"),
builds the pattern databases if needed, runs IDA*, and prints the solution.

Unless --no-history is given, the attempt is recorded to the solve history
database.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&noHistory, "no-history", false, "Don't record this solve to history")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble := strings.Join(args, " ")

	s := solver.New(solver.DefaultConfig)

	if verbose {
		fmt.Printf("Scramble: %s\n", scramble)
		fmt.Println("Building pattern databases and searching...")
	}

	begin := time.Now()
	solution, stats, err := s.SolveWithStats(cmd.Context(), scramble)
	elapsed := time.Since(begin)

	if err != nil {
		if !noHistory {
			recordAttempt(scramble, "", false, stats, elapsed)
		}
		return err
	}

	fmt.Println(solution)

	if verbose {
		fmt.Printf("Moves: %d, nodes visited: %d, threshold reached: %d, elapsed: %s\n",
			stats.MoveCount, stats.NodesVisited, stats.ThresholdReached, elapsed)
	}

	if !noHistory {
		recordAttempt(scramble, solution, true, stats, elapsed)
	}

	return nil
}

func recordAttempt(scramble, solution string, solved bool, stats solver.Stats, elapsed time.Duration) {
	db, err := openDB()
	if err != nil {
		if verbose {
			fmt.Printf("warning: could not open history database: %v\n", err)
		}
		return
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	_, err = repo.Create(storage.SolveRecord{
		Scramble:         scramble,
		Solution:         solution,
		Solved:           solved,
		MoveCount:        stats.MoveCount,
		NodesVisited:     stats.NodesVisited,
		ThresholdReached: stats.ThresholdReached,
		ElapsedMs:        elapsed.Milliseconds(),
	})
	if err != nil && verbose {
		fmt.Printf("warning: could not record solve history: %v\n", err)
	}
}
