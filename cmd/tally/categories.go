package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List budget categories",
		Long:  `List every category with its budget limit and running total spent.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := svc.ListCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Category"),
				headerStyle.Render("Budget"),
				headerStyle.Render("Spent"),
				headerStyle.Render("Remaining"))
			for _, cat := range categories {
				fmt.Fprintf(w, "%d\t%s\t$%.2f\t$%.2f\t$%.2f\n",
					cat.ID, cat.Name, cat.BudgetLimit, cat.TotalSpent, cat.BudgetLimit-cat.TotalSpent)
			}

			return nil
		},
	}
}
