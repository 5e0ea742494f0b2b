package main

import (
	"fmt"
	"strconv"

	"github.com/nfarrell/tally/internal/model"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent expenses",
		Long:  `List expenses with their category names, newest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := svc.ListExpenses(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}

			renderExpenses(cmd.OutOrStdout(), expenses)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows to show (default 50)")

	return cmd
}

func updateCmd() *cobra.Command {
	var (
		amount      float64
		categoryID  int
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an expense",
		Long: `Update an expense. Only the flags you set are written; everything
else keeps its stored value. Setting --description to an empty string
clears the description.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q: %w", args[0], err)
			}

			// Only flags the user actually set become part of the update.
			var upd model.ExpenseUpdate
			if cmd.Flags().Changed("amount") {
				upd.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				upd.CategoryID = &categoryID
			}
			if cmd.Flags().Changed("description") {
				upd.Description = &description
			}
			if cmd.Flags().Changed("date") {
				upd.Date = &date
			}

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := svc.UpdateExpense(ctx, id, upd); err != nil {
				return err
			}

			fmt.Println(successStyle.Render(fmt.Sprintf("Expense %d updated.", id)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "new amount")
	cmd.Flags().IntVar(&categoryID, "category", 0, "new category id")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")

	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q: %w", args[0], err)
			}

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := svc.DeleteExpense(ctx, id); err != nil {
				return err
			}

			fmt.Println(successStyle.Render(fmt.Sprintf("Expense %d deleted.", id)))
			return nil
		},
	}
}
