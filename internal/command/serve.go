package command

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/bornholm/effortcalc/internal/api"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the calculator as a JSON API:

  GET  /healthz          liveness probe
  GET  /api/v1/factors   factor options, multipliers and risk buffers
  GET  /api/v1/config    current configuration
  POST /api/v1/estimate  compute an estimate from factor selections`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		server := api.NewServer(config, zap.L())
		if err := server.ListenAndServe(ctx, serveAddr); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "Address to listen on")
}
