package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/sheetkit/internal/demo"
)

var isTerminal = term.IsTerminal

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive sheet demo",
	Long: `Open a full-screen demo with a "Show Content" action. The sheet hosts a
markdown section that scrolls and a form and list section pinned to the bottom.

Drag the handle with the mouse, click the backdrop, or press esc to dismiss.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
			return errors.New("demo needs an interactive terminal")
		}

		model := demo.New(cfg, logger)
		defer model.Sheet().Close()

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		logger.Info("demo started", "metrics", cfg.Interaction.Metrics)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run demo: %w", err)
		}
		logger.Info("demo finished", "dismissals", model.Dismissals())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
