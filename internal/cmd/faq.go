package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gogetwell/website/internal/catalog"
	"github.com/gogetwell/website/internal/search"
)

func newFAQCommand(output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "faq [query]",
		Short: "Search the frequently asked questions",
		Long: `Lists the FAQ entries whose question or answer contains the query,
ignoring case. Without a query every entry is listed.`,
		Example: `  gogetwell faq website
  gogetwell faq "medical tourism" -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := catalog.Load()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			faqs := search.FAQs(content.FAQs(), query)

			if *output != outputTable {
				return writeStructured(cmd.OutOrStdout(), *output, faqs)
			}
			if len(faqs) == 0 {
				cmd.Println("No matching questions found.")
				return nil
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("#", "Question")
			for i, f := range faqs {
				if err := table.Append(strconv.Itoa(i+1), f.Question); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
