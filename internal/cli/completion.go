package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// CategoryCompletion provides shell completion for category names. The
// candidates come from the category cache, never from the store: the store
// may be locked by another running command, and completion must stay fast.
func CategoryCompletion(categories []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		// Only the first argument is a category
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var completions []string
		for _, name := range categories {
			if strings.HasPrefix(strings.ToLower(name), strings.ToLower(toComplete)) {
				completions = append(completions, name)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}

// FilterCompletion completes category names plus the literal "all" used to
// reset the filter.
func FilterCompletion(categories []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	withAll := append([]string{"all"}, categories...)
	return CategoryCompletion(withAll)
}
