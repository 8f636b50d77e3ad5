package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bornholm/effortcalc/internal/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mcpRootDir string
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server management commands",
	Long:  `Manage MCP server for LLM integration.`,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.AddCommand(mcpServerCmd)
	mcpServerCmd.Flags().StringVar(&mcpRootDir, "root", "", "Root directory for the MCP server (default: current working directory)")
}

// mcpServerCmd represents the mcp server command
var mcpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the MCP server",
	Long: `Run the MCP server. The server uses stdio transport for communication and
only reads and writes estimate files below its root directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rootDir := mcpRootDir
		if rootDir == "" {
			var err error
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current working directory: %w", err)
			}
		}

		// The configuration file may live outside the root directory
		config, err := loadConfig()
		if err != nil {
			return err
		}

		server, err := mcp.NewServer(&mcp.ServerOptions{
			RootDir: rootDir,
			Config:  config,
			Logger:  zap.L(),
			Version: version,
		})
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		defer server.Close()

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if err := server.Run(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
