package main

import (
	"github.com/spf13/cobra"

	"gosyncquotes/internal/tui"
)

// newBrowseCmd creates the 'browse' command
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive quote browser",
		Long: `Open the full-screen quote browser.

Keys:
  n / space   next quote
  f           cycle the category filter
  a           add a quote
  s           sync now
  c           resolved-conflict panel
  q           quit

Auto-sync keeps running in the background while the browser is open
when enabled in the config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			a.StartAutoSync()
			return tui.Run(a)
		},
	}
}
