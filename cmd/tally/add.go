package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <category-id>",
		Short: "Record a new expense",
		Long: `Record an expense against a budget category. The date defaults to
today when not given. After a successful insert the category's budget is
checked and a warning is printed when spending is near or over the limit.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			categoryID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid category id %q: %w", args[1], err)
			}

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			status, err := svc.AddExpense(ctx, amount, categoryID, description, date)
			if err != nil {
				return err
			}

			fmt.Println(successStyle.Render(fmt.Sprintf("Expense of $%.2f added.", amount)))
			renderBudgetStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "expense date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")

	return cmd
}
