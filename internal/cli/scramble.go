package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HeathKnowles/rubik-ca/internal/notation"
	"github.com/HeathKnowles/rubik-ca/internal/scramble"
)

var scrambleLength int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble",
	Long:  `Generate and print a random sequence of moves, avoiding immediate face repeats.`,
	RunE:  runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleLength, "length", 14, "Number of moves in the scramble")
}

func runScramble(cmd *cobra.Command, args []string) error {
	moves := scramble.Random(scrambleLength)
	fmt.Println(notation.FormatSequence(moves))
	return nil
}
