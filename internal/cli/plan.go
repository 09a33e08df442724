package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitgate/fitgate/pkg/client"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and list workout and meal plans",
	}

	cmd.AddCommand(newPlanGenerateCmd())
	cmd.AddCommand(newPlanListCmd())

	return cmd
}

func newPlanGenerateCmd() *cobra.Command {
	var (
		kind      string
		goal      string
		days      int
		equipment string
		dietary   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a workout or meal plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client.GeneratePlanRequest{
				Goal:         goal,
				DaysPerWeek:  days,
				Equipment:    equipment,
				DietaryPrefs: dietary,
			}

			ctx := context.Background()
			var (
				p   *client.Plan
				err error
			)
			switch kind {
			case "workout":
				p, err = apiClient.GenerateWorkout(ctx, req)
			case "meal":
				p, err = apiClient.GenerateMeal(ctx, req)
			default:
				return fmt.Errorf("unknown plan kind %q (use workout or meal)", kind)
			}
			if err != nil {
				return describeDenial(err)
			}

			if getOutputFormat() != "table" {
				return printOutput(p)
			}

			fmt.Printf("%s\n\n%s\n", p.Title, p.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "workout", "plan kind: workout or meal")
	cmd.Flags().StringVar(&goal, "goal", "", "training or nutrition goal")
	cmd.Flags().IntVar(&days, "days", 0, "training days per week")
	cmd.Flags().StringVar(&equipment, "equipment", "", "available equipment")
	cmd.Flags().StringVar(&dietary, "dietary", "", "dietary preferences")

	return cmd
}

func newPlanListCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your generated plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out, err := apiClient.ListPlans(ctx, page, pageSize)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(out)
			}

			table := NewTable("ID", "KIND", "TITLE", "CREATED")
			for _, p := range out.Data {
				table.AddRow(
					fmt.Sprintf("%d", p.ID),
					p.Kind,
					truncate(p.Title, 50),
					p.CreatedAt.Format("2006-01-02 15:04"),
				)
			}
			table.Render()
			fmt.Printf("\nPage %d of %d (%d plans)\n", out.Page, out.TotalPages, out.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "plans per page")

	return cmd
}

// describeDenial turns an access denial into an actionable message
func describeDenial(err error) error {
	apiErr, ok := err.(*client.APIError)
	if !ok {
		return err
	}
	switch {
	case apiErr.IsInsufficientTier():
		return fmt.Errorf("your %s tier does not include this feature (requires %s). Upgrade at the billing page",
			apiErr.CurrentTier(), apiErr.RequiredTier())
	case apiErr.IsScreeningIncomplete():
		return fmt.Errorf("complete the readiness questionnaire first: fitgate screening")
	case apiErr.IsUnauthorized():
		return fmt.Errorf("session expired. Run 'fitgate auth login'")
	default:
		return err
	}
}
