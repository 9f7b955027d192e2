package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gosyncquotes/internal/mockapi"
)

// newMockServerCmd creates the 'mock-server' command
func newMockServerCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Run a local stand-in quote server",
		Long: `Run a local server that behaves like the public quote API.

GET /posts serves a fixed seeded page; POST /posts echoes the submitted
resource with a fresh id without persisting it. Point the client at it
via 'server.base_url' in the config.

Examples:
  gosyncquotes mock-server                    # Listen on localhost:3999
  gosyncquotes mock-server --addr :8080       # Custom address`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mockapi.NewServer(addr)
			if err := server.Start(); err != nil {
				return fmt.Errorf("failed to start mock server: %w", err)
			}

			fmt.Printf("Mock quote server listening on http://%s\n", server.Addr())
			fmt.Println("Press Ctrl+C to stop.")

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			<-sigCh

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", mockapi.DefaultAddr, "Listen address")
	return cmd
}
