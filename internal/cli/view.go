package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/HeathKnowles/rubik-ca/internal/cube"
	"github.com/HeathKnowles/rubik-ca/internal/notation"
	"github.com/HeathKnowles/rubik-ca/internal/solver"
)

var viewCmd = &cobra.Command{
	Use:   "view <scramble...>",
	Short: "Interactively step through a solution",
	Long: `Solve a scramble and open a TUI for stepping forward and backward through
the returned move sequence one turn at a time.

Keyboard shortcuts:
  n / right   - Apply the next move
  p / left    - Undo the last applied move
  r           - Reset to the start of the solution
  q / esc     - Quit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

var (
	viewTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	viewStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	viewSolvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	viewMoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	viewDoneMoveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	viewErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	viewHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type viewModel struct {
	scramble string
	solution []cube.Move
	start    cube.CubeState
	cursor   int // number of solution moves applied so far
	err      error
	quitting bool
}

func newViewModel(scramble string, solution []cube.Move, start cube.CubeState) viewModel {
	return viewModel{scramble: scramble, solution: solution, start: start}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "n", "right":
		if m.cursor < len(m.solution) {
			m.cursor++
		}
	case "p", "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "r":
		m.cursor = 0
	}

	return m, nil
}

func (m viewModel) current() cube.CubeState {
	return cube.ApplySequence(m.start, m.solution[:m.cursor])
}

func (m viewModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(viewTitleStyle.Render("cubesolve - solution viewer"))
	b.WriteString("\n\n")
	b.WriteString(viewStatusStyle.Render(fmt.Sprintf("Scramble: %s", m.scramble)))
	b.WriteString("\n\n")

	var parts []string
	for i, mv := range m.solution {
		token := notation.Format(mv)
		if i < m.cursor {
			parts = append(parts, viewDoneMoveStyle.Render(token))
		} else if i == m.cursor {
			parts = append(parts, viewMoveStyle.Render("["+token+"]"))
		} else {
			parts = append(parts, token)
		}
	}
	if len(parts) == 0 {
		b.WriteString("(already solved)\n")
	} else {
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.current().IsSolved() {
		b.WriteString(viewSolvedStyle.Render("Cube is SOLVED"))
	} else {
		b.WriteString(viewStatusStyle.Render(fmt.Sprintf("%d of %d moves applied", m.cursor, len(m.solution))))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(viewErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(viewHelpStyle.Render("n/right=next  p/left=back  r=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runView(cmd *cobra.Command, args []string) error {
	scrambleStr := strings.Join(args, " ")

	scrambleMoves, err := notation.ParseSequence(scrambleStr)
	if err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}
	start := cube.ApplySequence(cube.Solved(), scrambleMoves)

	s := solver.New(solver.DefaultConfig)
	solutionMoves, _, err := s.SolveState(cmd.Context(), start)
	if err != nil {
		return err
	}

	model := newViewModel(scrambleStr, solutionMoves, start)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
