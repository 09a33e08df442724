package cli

import (
	"context"
	"sort"

	"github.com/spf13/cobra"
)

func newPolicyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Show the server's feature access policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			doc, err := apiClient.FetchPolicy(ctx)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(doc)
			}

			keys := make([]string, 0, len(doc.Features))
			for k := range doc.Features {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			table := NewTable("FEATURE", "TIER", "SCREENING", "GUESTS")
			for _, k := range keys {
				rule := doc.Features[k]
				table.AddRow(k, rule.RequiredTier, formatBool(rule.RequiresScreening), formatBool(rule.AllowGuest))
			}
			table.Render()
			return nil
		},
	}
}
