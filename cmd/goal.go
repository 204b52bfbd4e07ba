package cmd

import (
	"fmt"

	"github.com/spendlens/backend/internal/tui"
	"github.com/spendlens/backend/pkg/client"
	"github.com/spendlens/backend/pkg/goal"
	"github.com/spf13/cobra"
)

var goalFields client.GoalFields

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Check if a savings goal can be reached",
	Long: `Check if a savings goal can be reached with the spending of the latest statement.

Without --amount and --months, the goal is entered in a form.`,
	Args: cobra.NoArgs,
	RunE: runGoal,
}

func init() {
	goalCmd.Flags().StringVar(&goalFields.GoalAmount, "amount", "", "Goal amount")
	goalCmd.Flags().StringVar(&goalFields.Months, "months", "", "Months to reach the goal in")
	goalCmd.Flags().StringVar(&goalFields.MonthlyIncome, "income", "", "Monthly income, estimated from the statement if empty")
	rootCmd.AddCommand(goalCmd)
}

func runGoal(cmd *cobra.Command, _ []string) error {
	_, c, err := loadClient()
	if err != nil {
		return err
	}

	if goalFields.GoalAmount == "" && goalFields.Months == "" {
		if err := tui.NewGoalForm(&goalFields).RunWithContext(cmd.Context()); err != nil {
			return err
		}
	}

	form := client.NewGoalForm(c)
	outcome := form.Submit(cmd.Context(), goalFields)

	fmt.Fprintln(cmd.OutOrStdout(), form.Output())
	if e, ok := outcome.(goal.Err); ok {
		return fmt.Errorf("goal check failed: %s", e.Message)
	}

	return nil
}
