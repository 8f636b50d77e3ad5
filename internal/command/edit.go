package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bornholm/effortcalc/internal/store"
	"github.com/bornholm/effortcalc/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit an estimate interactively",
	Long: `Open an interactive terminal form to edit an estimate file. Results are
recomputed after every change. The file is created with the configured defaults
if it does not exist.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]

		if !isTerminal() {
			return fmt.Errorf("edit requires an interactive terminal, use 'effortcalc estimate' instead")
		}

		config, err := loadConfig()
		if err != nil {
			return err
		}

		s := getStore()

		label := strings.TrimSuffix(filepath.Base(file), store.EstimateFileSuffix)
		estimate, created, err := s.LoadOrCreateEstimate(file, label, config.NewInput(""))
		if err != nil {
			return fmt.Errorf("failed to load estimate: %w", err)
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "Created new estimate file: %s\n", file)
		}

		app := ui.NewApp(s, config, estimate, file)
		if err := app.Run(); err != nil {
			return fmt.Errorf("failed to run UI: %w", err)
		}

		return nil
	},
}

func isTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func init() {
	rootCmd.AddCommand(editCmd)
}
