package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gosyncquotes/internal/operations"
)

// newImportCmd creates the 'import' command
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import quotes from a JSON file",
		Long: `Import quotes from a JSON array of {"text", "category"} objects.

Each entry is validated on its own: invalid entries are reported and
skipped while the rest import normally. Unknown fields are ignored.
Imported quotes are pushed to the server best-effort, like 'add'.

Examples:
  gosyncquotes import quotes.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			result, err := operations.ImportQuotesFile(a.State(), a.Gateway(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d quote(s)", result.Accepted)
			if result.PostFailed > 0 {
				fmt.Printf(" (%d server push(es) failed)", result.PostFailed)
			}
			fmt.Println()

			for _, rejected := range result.Rejected {
				fmt.Printf("  Skipped entry %d: %s\n", rejected.Index, rejected.Reason)
			}
			return nil
		},
	}
}

// newExportCmd creates the 'export' command
func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a diagnostic snapshot",
		Long: `Export the sync configuration and conflict history as JSON.

The snapshot carries the server settings, the sync interval, the last
sync time and the resolved-conflict log. Useful for bug reports and for
inspecting what the resolver did.

Examples:
  gosyncquotes export               # Dated file in the working directory
  gosyncquotes export -o diag.json  # Explicit file
  gosyncquotes export -o -          # Write to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			if output == "-" {
				return operations.ExportDiagnostics(os.Stdout, a.Config(), a.Coordinator())
			}

			path, err := operations.ExportDiagnosticsFile(a.Config(), a.Coordinator(), output)
			if err != nil {
				return err
			}
			fmt.Printf("Diagnostics written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: dated file, '-' for stdout)")
	return cmd
}
