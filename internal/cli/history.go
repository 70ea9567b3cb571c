package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HeathKnowles/rubik-ca/internal/analysis"
	"github.com/HeathKnowles/rubik-ca/internal/storage"
)

var listLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past solve attempts",
	Long:  `Commands for listing, showing, and summarizing recorded solve attempts.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	Long:  `Display a list of recent solve attempts with basic statistics.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <solve-id>",
	Short: "Show details of a solve",
	Long:  `Display the scramble, solution, and search statistics for a single recorded solve.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historySummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize solve history",
	Long:  `Aggregate statistics (mean/median move count, mean nodes visited) across recorded solves.`,
	RunE:  runHistorySummary,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of solves to display")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historySummaryCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	records, err := repo.List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No solves recorded yet")
		fmt.Println("Solve a scramble with: cubesolve solve <scramble>")
		return nil
	}

	fmt.Printf("Recent solves (showing %d):\n", len(records))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-6s  %-6s  %-8s  %s\n", "ID", "Created", "Moves", "Solved", "Elapsed", "Scramble")
	fmt.Println("------------------------------------  --------------------  ------  ------  --------  --------")

	for _, r := range records {
		solved := "no"
		if r.Solved {
			solved = "yes"
		}
		scramble := r.Scramble
		if len(scramble) > 30 {
			scramble = scramble[:27] + "..."
		}
		fmt.Printf("%-36s  %-20s  %-6d  %-6s  %-8s  %s\n",
			r.SolveID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.MoveCount,
			solved,
			time.Duration(r.ElapsedMs*int64(time.Millisecond)).String(),
			scramble,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	record, err := repo.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get solve: %w", err)
	}
	if record == nil {
		return fmt.Errorf("solve not found: %s", args[0])
	}

	fmt.Println("Solve Details")
	fmt.Println("=============")
	fmt.Println()
	fmt.Printf("ID:      %s\n", record.SolveID)
	fmt.Printf("Created: %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Scramble: %s\n", record.Scramble)
	if record.Solved {
		fmt.Printf("Solution: %s\n", record.Solution)
	} else {
		fmt.Println("Solution: (not found within budget)")
	}
	fmt.Println()
	fmt.Println("Statistics")
	fmt.Println("----------")
	fmt.Printf("Moves:             %d\n", record.MoveCount)
	fmt.Printf("Nodes visited:     %d\n", record.NodesVisited)
	fmt.Printf("Threshold reached: %d\n", record.ThresholdReached)
	fmt.Printf("Elapsed:           %s\n", time.Duration(record.ElapsedMs*int64(time.Millisecond)))

	return nil
}

func runHistorySummary(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	records, err := repo.List(1_000_000)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	summary := analysis.Summarize(records)

	fmt.Println("Solve History Summary")
	fmt.Println("======================")
	fmt.Printf("Total attempts:       %d\n", summary.Count)
	fmt.Printf("Solved:               %d\n", summary.SolvedCount)
	fmt.Printf("Mean move count:      %.2f\n", summary.MeanMoveCount)
	fmt.Printf("Median move count:    %.2f\n", summary.MedianMoveCount)
	fmt.Printf("Mean nodes visited:   %.0f\n", summary.MeanNodesVisited)
	fmt.Printf("Max threshold reached: %d\n", summary.MaxThresholdReached)
	fmt.Printf("Mean elapsed (ms):    %.0f\n", summary.MeanElapsedMs)

	return nil
}
