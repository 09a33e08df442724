package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List user accounts (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out, err := apiClient.ListUsers(ctx, page, pageSize)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(out)
			}

			table := NewTable("ID", "EMAIL", "TYPE", "TIER", "STATUS", "SCREENED", "ADMIN")
			for _, u := range out.Data {
				table.AddRow(
					fmt.Sprintf("%d", u.ID),
					truncate(u.Email, 40),
					u.AccountType,
					u.SubscriptionTier,
					u.SubscriptionStatus,
					formatBool(u.ScreeningComplete),
					formatBool(u.IsAdmin),
				)
			}
			table.Render()
			fmt.Printf("\nPage %d of %d (%d users)\n", out.Page, out.TotalPages, out.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "users per page")

	return cmd
}
