package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fitgate/fitgate/pkg/client"
)

func newScreeningCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screening",
		Short: "Check or complete the readiness questionnaire",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			state, err := apiClient.ScreeningStatus(ctx)
			if err != nil {
				return err
			}
			if state.Complete {
				fmt.Println("Screening complete")
				return nil
			}
			fmt.Println("Screening not complete. Run 'fitgate screening submit' to answer the questionnaire.")
			return nil
		},
	}

	cmd.AddCommand(newScreeningSubmitCmd())
	return cmd
}

var parqQuestions = []string{
	"Has your doctor ever said that you have a heart condition?",
	"Do you feel pain in your chest during physical activity?",
	"In the past month, have you had chest pain while at rest?",
	"Do you lose your balance because of dizziness, or ever lose consciousness?",
	"Do you have a bone or joint problem that could worsen with activity?",
	"Are you currently taking medication for blood pressure or a heart condition?",
	"Do you know of any other reason why you should not do physical activity?",
}

func newScreeningSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Answer the questionnaire interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			answers := make([]bool, len(parqQuestions))
			for i, q := range parqQuestions {
				answers[i] = promptYesNo(fmt.Sprintf("%d. %s (y/N): ", i+1, q))
			}

			ctx := context.Background()
			state, err := apiClient.SubmitScreening(ctx, client.ScreeningAnswers{
				HeartCondition:     answers[0],
				ChestPainActivity:  answers[1],
				ChestPainRest:      answers[2],
				DizzinessOrBalance: answers[3],
				BoneOrJointProblem: answers[4],
				BloodPressureMeds:  answers[5],
				OtherReason:        answers[6],
			})
			if err != nil {
				return err
			}

			fmt.Println("Screening recorded")
			if state.PhysicianAdvised {
				fmt.Println("Note: your answers suggest consulting a physician before increasing activity.")
			}
			return nil
		},
	}
}

func promptYesNo(prompt string) bool {
	answer := strings.ToLower(promptInput(prompt))
	return answer == "y" || answer == "yes"
}
