package cmd

import (
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/internal/storage"
)

func newInboxCommand(output *string) *cobra.Command {
	var (
		dataDir string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Show contact messages stored in the local inbox",
		Long: `Lists the newest contact form submissions recorded when the server runs
with CONTACT_DELIVERY=sqlite.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataDir == "" {
				config.LoadDotenv()
				cfg, err := config.Parse()
				if err != nil {
					return err
				}
				dataDir = cfg.Storage.DataDir
			}

			store, err := storage.Open(dataDir)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			messages, err := store.ListContactMessages(ctx, limit)
			if err != nil {
				return err
			}
			total, err := store.CountContactMessages(ctx)
			if err != nil {
				return err
			}

			if *output != outputTable {
				return writeStructured(cmd.OutOrStdout(), *output, messages)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Received", "Name", "Email", "Message")
			for _, m := range messages {
				if err := table.Append(m.ReceivedAt.Local().Format(time.DateTime), m.Fullname, m.Email, preview(m.Message, 48)); err != nil {
					return err
				}
			}
			if err := table.Render(); err != nil {
				return err
			}
			cmd.Printf("showing %d of %d messages\n", len(messages), total)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "inbox directory (default STORAGE_DATA_DIR)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of messages to show")
	return cmd
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
