package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gosyncquotes/internal/app"
	"gosyncquotes/internal/cache"
	"gosyncquotes/internal/cli"
	"gosyncquotes/internal/operations"
	"gosyncquotes/internal/utils"
	"gosyncquotes/store"
)

// newShowCmd creates the 'show' command
func newShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [category]",
		Short: "Show a random quote",
		Long: `Show a random quote from the active filter.

With a category argument the quote is drawn from that category once,
without changing the stored filter.

Examples:
  gosyncquotes show             # Quote from the active filter
  gosyncquotes show Wisdom      # Quote from one category
  gosyncquotes show --json      # Machine-readable output`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cli.CategoryCompletion(cache.LoadCategoriesOrEmpty()),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			var category string
			if len(args) > 0 {
				category = args[0]
			}

			q, err := a.State().RandomFrom(category)
			if err != nil {
				return err
			}

			if asJSON {
				return utils.OutputJSON(q)
			}
			cli.ShowQuoteCard(q)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// newAddCmd creates the 'add' command
func newAddCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a quote",
		Long: `Add a quote to the local set and push it to the server.

The quote is validated and persisted locally first. The server push is
best-effort: the server echoes the created resource without keeping it,
and a failed push never undoes the local add.

Examples:
  gosyncquotes add "Stay hungry" -c Motivation
  gosyncquotes add "Less is more"                 # Goes to General`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			q, result, err := operations.AddQuote(a.State(), a.Gateway(), args[0], category)
			if err != nil {
				return err
			}

			cli.ShowQuoteCard(q)
			if result.OK {
				fmt.Printf("Added and pushed to server (remote id %s)\n", result.RemoteID)
			} else {
				fmt.Println("Added locally; server push failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "General", "Quote category")
	return cmd
}

// newListCmd creates the 'list' command
func newListCmd() *cobra.Command {
	var all bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes",
		Long: `List the quotes matching the active filter.

Examples:
  gosyncquotes list            # Quotes in the active filter
  gosyncquotes list --all      # Whole set regardless of filter
  gosyncquotes list --json     # Machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			quotes := a.State().Visible()
			if all {
				quotes = a.State().Quotes()
			}

			if asJSON {
				return utils.OutputJSON(quotes)
			}

			if len(quotes) == 0 {
				fmt.Println("No quotes to show.")
				return nil
			}
			cli.ShowQuoteList(quotes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Ignore the active filter")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// newCategoriesCmd creates the 'categories' command
func newCategoriesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with quote counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			categories := a.State().Categories()
			if asJSON {
				return utils.OutputJSON(categories)
			}
			cli.ShowCategories(categories)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// newFilterCmd creates the 'filter' command
func newFilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter [category]",
		Short: "Show or set the category filter",
		Long: `Set the persisted category filter.

The filter survives restarts and constrains which quotes 'show', 'list'
and the browser draw from. 'all' resets it. Without an argument the
known categories are offered for selection.

Examples:
  gosyncquotes filter           # Interactive selection
  gosyncquotes filter Wisdom    # Only Wisdom quotes
  gosyncquotes filter all       # Back to everything`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cli.FilterCompletion(cache.LoadCategoriesOrEmpty()),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			var selected string
			if len(args) > 0 {
				selected = args[0]
			} else {
				selected, err = selectCategoryInteractively(a)
				if err != nil {
					return err
				}
			}

			applied := a.State().SetFilter(selected)
			fmt.Printf("Filter set to '%s'\n", applied)
			return nil
		},
	}
}

// selectCategoryInteractively numbers the known categories and reads a
// choice from stdin.
func selectCategoryInteractively(a *app.App) (string, error) {
	categories := a.State().Categories()

	fmt.Printf("Current filter: %s\n\n", a.State().Filter())
	fmt.Printf("1: all (%d quotes)\n", len(a.State().Quotes()))
	for i, c := range categories {
		fmt.Printf("%d: %s (%d quotes)\n", i+2, c.Name, c.Count)
	}

	fmt.Printf("Enter selection (1-%d): ", len(categories)+1)
	var choice int
	if _, err := fmt.Scanf("%d", &choice); err != nil || choice < 1 || choice > len(categories)+1 {
		return "", fmt.Errorf("invalid choice: %d", choice)
	}
	if choice == 1 {
		return store.DefaultFilter, nil
	}
	return categories[choice-2].Name, nil
}
