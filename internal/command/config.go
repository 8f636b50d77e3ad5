package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bornholm/effortcalc/internal/model"
	"github.com/bornholm/effortcalc/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long:  `Manage the effortcalc configuration file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a default configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := getStore()

		configPath := configFile
		if configPath == "" {
			configPath = store.DefaultConfigFile
		}
		if _, err := os.Stat(configPath); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("configuration file already exists at %s, use --force to overwrite", configPath)
			}
		}

		config := model.DefaultConfig()

		if persona, _ := cmd.Flags().GetString("persona"); persona != "" {
			role, err := model.ParseRole(persona)
			if err != nil {
				return err
			}
			config.Persona = role
		}

		if err := s.SaveConfig(config); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at %s\n", configPath)
		return nil
	},
}

// configViewCmd represents the config view command
var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View current configuration",
	Long:  `Display the current configuration settings, environment overrides included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		out := cmd.OutOrStdout()

		switch format {
		case "json":
			data, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config to JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case "yaml":
			data, err := yaml.Marshal(config)
			if err != nil {
				return fmt.Errorf("failed to marshal config to YAML: %w", err)
			}
			fmt.Fprint(out, string(data))
		default:
			fmt.Fprintf(out, "Persona: %s\n", config.GetPersona())
			fmt.Fprintf(out, "Non-positive hours policy: %s\n", config.GetPolicy())
			fmt.Fprintln(out, "\nDefaults:")
			fmt.Fprintf(out, "  Base effort: %.2f hrs\n", config.Defaults.BaseEffortHours)
			fmt.Fprintf(out, "  Focus hours/day: %.2f\n", config.Defaults.FocusHoursPerDay)
			fmt.Fprintf(out, "  Developer level: %s\n", config.Defaults.DeveloperLevel)
			fmt.Fprintf(out, "  Availability: %s\n", config.Defaults.Availability)
			fmt.Fprintf(out, "  Risk: %s\n", config.Defaults.Risk)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configViewCmd)

	configInitCmd.Flags().BoolP("force", "f", false, "Force overwrite existing configuration")
	configInitCmd.Flags().String("persona", "", "Default persona (BA/PMO, Developer)")
	configViewCmd.Flags().StringP("format", "f", "yaml", "Output format (yaml, json, text)")
}
