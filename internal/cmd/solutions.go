package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gogetwell/website/internal/catalog"
	"github.com/gogetwell/website/internal/search"
)

func newSolutionsCommand(output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "solutions [category]",
		Short: "List solutions, optionally for one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := catalog.Load()
			if err != nil {
				return err
			}

			category := catalog.AllCategories
			if len(args) == 1 {
				category = strings.ToLower(strings.TrimSpace(args[0]))
			}
			if !content.HasCategory(category) {
				return fmt.Errorf("unknown category %q (valid: %s)", category, strings.Join(content.CategoryNames(), ", "))
			}

			solutions := search.Solutions(content.Solutions(), category)

			if *output != outputTable {
				return writeStructured(cmd.OutOrStdout(), *output, solutions)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Title", "Category")
			for _, s := range solutions {
				if err := table.Append(s.Title, s.Category); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
