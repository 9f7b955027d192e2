package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gosyncquotes/internal/cli"
	syncpkg "gosyncquotes/internal/sync"
	"gosyncquotes/internal/utils"
	"gosyncquotes/remote"
)

// newSyncCmd creates the sync command with all subcommands
func newSyncCmd() *cobra.Command {
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize quotes with the server",
		Long: `Run one synchronization cycle against the quote server.

The cycle fetches the current server page, merges it with the cached
snapshot, and reconciles it with the local set. Conflicting quotes keep
the server version (the local version is recorded in the conflict log);
server records not present locally are added.

Examples:
  gosyncquotes sync                 # Sync now
  gosyncquotes sync status          # Show sync status
  gosyncquotes sync interval 45s    # Change the auto-sync cadence`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			fmt.Println("Syncing...")
			result, err := a.Coordinator().RunSync()
			if err != nil {
				var netErr *remote.NetworkError
				if errors.As(err, &netErr) {
					return utils.ErrServerUnreachable(a.Config().Server.BaseURL, netErr.Err.Error())
				}
				return err
			}

			printSyncResult(result)
			return nil
		},
	}

	syncCmd.AddCommand(newSyncStatusCmd())
	syncCmd.AddCommand(newSyncIntervalCmd())

	return syncCmd
}

// newSyncStatusCmd creates the 'sync status' command
func newSyncStatusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show sync status",
		Long: `Display the current synchronization state including:
- Server reachability
- Last published sync status
- Quote counts by origin
- Conflicts resolved so far
- Auto-sync interval and whether the timer runs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyncStatus(asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// newStatusCmd creates the top-level 'status' shorthand
func newStatusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show sync status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyncStatus(asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func runSyncStatus(asJSON bool) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	// Probe now instead of trusting the last recorded transition.
	online := a.Gateway().Ping() == nil
	status := a.Coordinator().Status()
	stats := a.Coordinator().Stats()

	if asJSON {
		return utils.OutputJSON(struct {
			Online     bool           `json:"online"`
			Status     syncpkg.Status `json:"status"`
			Stats      syncpkg.Stats  `json:"stats"`
			IntervalMS int64          `json:"intervalMs"`
		}{online, status, stats, a.Coordinator().Interval().Milliseconds()})
	}

	cli.ShowSyncStatus(status, stats, online, a.Coordinator().Interval())
	return nil
}

// newSyncIntervalCmd creates the 'sync interval' command
func newSyncIntervalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interval [duration]",
		Short: "Show or set the auto-sync interval",
		Long: `Show or set the periodic sync cadence.

Accepts Go duration syntax ("45s", "2m") or a bare number of
milliseconds. Values below the 10s minimum are clamped up. The value is
persisted and takes effect from the next tick.

Examples:
  gosyncquotes sync interval        # Show the current cadence
  gosyncquotes sync interval 45s    # Sync every 45 seconds
  gosyncquotes sync interval 60000  # Same as 1m`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Printf("Auto-sync interval: %s\n", a.Coordinator().Interval())
				return nil
			}

			d, err := utils.ParseIntervalFlag(args[0])
			if err != nil {
				return err
			}

			applied := a.Coordinator().SetInterval(d)
			fmt.Printf("Auto-sync interval set to %s\n", applied)
			return nil
		},
	}
}

// newConflictsCmd creates the 'conflicts' command
func newConflictsCmd() *cobra.Command {
	var limit int
	var clear bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Show resolved sync conflicts",
		Long: `Show the audit log of resolved conflicts.

Every conflict is resolved by keeping the server version; the log
records what the local version was. The most recent 100 resolutions
are retained.

Examples:
  gosyncquotes conflicts           # All retained records, newest first
  gosyncquotes conflicts -n 5      # Only the latest 5
  gosyncquotes conflicts --clear   # Discard the log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			if clear {
				a.Coordinator().ClearConflictLog()
				fmt.Println("Conflict log cleared")
				return nil
			}

			records := a.Coordinator().ConflictLog().Recent(limit)
			if asJSON {
				return utils.OutputJSON(records)
			}
			cli.ShowConflictRecords(records)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many records (0 = all retained)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Discard all records")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// newWatchCmd creates the 'watch' command
func newWatchCmd() *cobra.Command {
	var interval string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run auto-sync in the foreground",
		Long: `Run periodic background sync until interrupted.

A connectivity probe pings the server on a fixed cadence; sync pauses
while offline and a catch-up cycle runs shortly after the connection
returns.

Examples:
  gosyncquotes watch            # Stored or default interval
  gosyncquotes watch -i 45s     # Persist a new interval and run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			if interval != "" {
				d, err := utils.ParseIntervalFlag(interval)
				if err != nil {
					return err
				}
				a.Coordinator().SetInterval(d)
			}

			a.Coordinator().StartAutoSync()
			watcher := syncpkg.NewConnectivityWatcher(a.Coordinator(), a.Gateway(), syncpkg.DefaultProbeInterval)
			watcher.Start()

			fmt.Printf("Auto-sync running every %s. Press Ctrl+C to stop.\n", a.Coordinator().Interval())

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			<-sigCh

			fmt.Println("\nStopping...")
			watcher.Stop()
			return nil
		},
	}

	cmd.Flags().StringVarP(&interval, "interval", "i", "", "Persist a new sync interval (e.g. 45s, 2m)")
	return cmd
}

// printSyncResult displays one cycle's outcome
func printSyncResult(result *syncpkg.SyncResult) {
	fmt.Println("\n=== Sync Complete ===")
	fmt.Printf("Fetched records: %d\n", result.Fetched)

	if result.ConflictsFound > 0 {
		fmt.Printf("Conflicts found: %d\n", result.ConflictsFound)
		fmt.Printf("Conflicts resolved: %d (server version kept)\n", result.ConflictsResolved)
	}
	if result.NetNew > 0 {
		fmt.Printf("New quotes from server: %d\n", result.NetNew)
	}

	fmt.Printf("Duration: %s\n", result.Duration.Round(time.Millisecond))
	fmt.Println()
}
