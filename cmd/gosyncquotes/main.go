package main

import (
	"os"

	"github.com/spf13/cobra"

	"gosyncquotes/internal/app"
	"gosyncquotes/internal/cache"
	"gosyncquotes/internal/cli"
	"gosyncquotes/internal/config"
	"gosyncquotes/internal/tui"
	"gosyncquotes/internal/utils"
)

// application is the shared App instance commands run against. It is
// created lazily so commands that never touch the core (mock-server,
// shell completion) do not open the store.
var application *app.App

// requireApp wires the shared App on first use.
func requireApp() (*app.App, error) {
	if application != nil {
		return application, nil
	}

	a, err := app.NewApp()
	if err != nil {
		return nil, err
	}
	if a.Config().Verbose {
		utils.SetVerboseMode(true)
	}
	application = a
	return application, nil
}

// refreshCategoryCache rewrites the completion cache from the current
// state. The store file is locked while the app runs, so shell
// completion reads this cache instead.
func refreshCategoryCache() {
	if application == nil {
		return
	}
	categories := application.State().Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	if err := cache.SaveCategories(names); err != nil {
		utils.Debugf("Failed to refresh category cache: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "gosyncquotes [category]",
		Short: "Quote browser with server sync",
		Long: `A quote browser with durable local persistence and background
server synchronization.

Running without arguments shows a random quote from the active filter
(or opens the interactive browser when 'ui: tui' is configured). An
optional category argument draws from that category once, without
changing the stored filter.

Examples:
  gosyncquotes                      # Random quote from the active filter
  gosyncquotes Wisdom               # Random quote from one category
  gosyncquotes add "..." -c Life    # Add a quote
  gosyncquotes sync                 # Sync with the server now
  gosyncquotes browse               # Interactive browser`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cli.CategoryCompletion(cache.LoadCategoriesOrEmpty()),
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Root().PersistentFlags().Changed("config") {
				config.SetCustomConfigPath(configPath)
			}
			if verbose {
				utils.SetVerboseMode(true)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if application != nil {
				refreshCategoryCache()
				application.Shutdown()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			var category string
			if len(args) > 0 {
				category = args[0]
			}

			if category == "" && a.Config().UI == "tui" {
				a.StartAutoSync()
				return tui.Run(a)
			}

			q, err := a.State().RandomFrom(category)
			if err != nil {
				return err
			}
			cli.ShowQuoteCard(q)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file or directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newConflictsCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newMockServerCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
