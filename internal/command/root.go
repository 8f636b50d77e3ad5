package command

import (
	"fmt"
	"os"

	"github.com/bornholm/effortcalc/internal/log"
	"github.com/bornholm/effortcalc/internal/model"
	"github.com/bornholm/effortcalc/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	logLevel   string
)

// version is set at build time with -ldflags "-X ..."
var version = "dev"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "effortcalc",
	Short: "A CLI tool for factor-based effort estimation",
	Long: `Effortcalc estimates the effort of a work item from categorical factors.

It allows you to:
- Compute effort in hours, working days and a projected end date
- Save estimation inputs to .estimate.yml files and render them as text, markdown, JSON or YAML
- Tweak factors interactively in a terminal form
- Serve the calculator over MCP (stdio) or HTTP

Use "effortcalc [command] --help" for more information about a command.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(log.InitLog(lvl))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	_ = zap.L().Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", store.DefaultConfigFile, "configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

// getStore creates a new YAML store with the configured file
func getStore() *store.YAMLStore {
	return store.NewYAMLStore(configFile)
}

// loadConfig loads the configuration with its environment overrides
func loadConfig() (*model.Config, error) {
	config, err := getStore().LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	zap.L().Debug("configuration loaded",
		zap.String("persona", string(config.GetPersona())),
		zap.String("policy", string(config.GetPolicy())),
	)

	return config, nil
}
