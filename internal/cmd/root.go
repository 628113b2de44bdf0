package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// NewRootCommand builds the gogetwell command tree. Running it without a
// subcommand starts the web server.
func NewRootCommand() *cobra.Command {
	var output string

	root := &cobra.Command{
		Use:   "gogetwell",
		Short: "gogetwell.ai landing site",
		Long: `Serves the gogetwell.ai landing page and lets you query its content.

Without a subcommand the web server is started, configured from the
environment and any .env / .env.local files in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.PersistentFlags().StringVarP(&output, "output", "o", outputTable, "output format (table, json, yaml)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		switch output {
		case outputTable, outputJSON, outputYAML:
			return nil
		default:
			return fmt.Errorf("unsupported output format %q (use table, json or yaml)", output)
		}
	}

	root.AddCommand(
		newServeCommand(),
		newFAQCommand(&output),
		newSolutionsCommand(&output),
		newInboxCommand(&output),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
