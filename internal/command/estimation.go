package command

import (
	"fmt"
	"os"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/format"
	"github.com/bornholm/effortcalc/internal/model"
	"github.com/bornholm/effortcalc/internal/store"
	"github.com/spf13/cobra"
)

var newSelection *selectionFlags

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new estimate file",
	Long: `Create a new estimate file with the given name. Selections not given on the
command line use the configured defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		output, _ := cmd.Flags().GetString("output")
		description, _ := cmd.Flags().GetString("description")

		if output == "" {
			output = store.EstimateFileName(name)
		}

		if _, err := os.Stat(output); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("file '%s' already exists, use --force to overwrite", output)
			}
		}

		config, err := loadConfig()
		if err != nil {
			return err
		}

		in, err := newSelection.input(config, cmd.Flags())
		if err != nil {
			return err
		}

		estimate := model.NewEstimate(name, in)
		estimate.Description = description

		if err := getStore().SaveEstimate(output, estimate); err != nil {
			return fmt.Errorf("failed to create estimate: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created estimate '%s' at %s\n", name, output)
		return nil
	},
}

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "View an estimate",
	Long:  `Compute a saved estimate and render it in various formats (text, markdown, json, yaml).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		formatType, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		s := getStore()

		estimate, err := s.LoadEstimate(file)
		if err != nil {
			return fmt.Errorf("failed to load estimate: %w", err)
		}

		config, err := loadConfig()
		if err != nil {
			return err
		}

		engine := estimator.NewEngine(estimator.WithPolicy(config.GetPolicy()))
		formatter, err := format.New(formatType, engine)
		if err != nil {
			return err
		}

		result, err := formatter.Format(estimate)
		if err != nil {
			return fmt.Errorf("failed to compute estimate: %w", err)
		}

		if output != "" {
			if err := os.WriteFile(output, []byte(result), 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Output written to %s\n", output)
		} else {
			fmt.Fprint(cmd.OutOrStdout(), result)
		}

		return nil
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List estimate files",
	Long:  `List the estimate files found in a directory (default: current directory).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		files, err := getStore().ListEstimates(dir)
		if err != nil {
			return fmt.Errorf("failed to list estimates: %w", err)
		}

		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(listCmd)

	newSelection = newSelectionFlags(newCmd.Flags())
	newCmd.Flags().StringP("output", "o", "", "Output file path (default: <name>.estimate.yml)")
	newCmd.Flags().StringP("description", "d", "", "Estimate description")
	newCmd.Flags().Bool("force", false, "Overwrite an existing file")

	viewCmd.Flags().StringP("format", "f", "text", "Output format (text, markdown, json, yaml)")
	viewCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
}
