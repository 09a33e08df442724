package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Tail the audit trail (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			entries, err := apiClient.AuditTail(ctx, limit)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(entries)
			}

			table := NewTable("TIME", "ACTOR", "ACTION", "DETAIL")
			for _, e := range entries {
				table.AddRow(
					e.Time.Format("2006-01-02 15:04:05"),
					e.Actor,
					e.Action,
					truncate(e.Detail, 60),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum entries")

	return cmd
}
