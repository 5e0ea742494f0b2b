package main

import (
	"strconv"

	"github.com/nfarrell/tally/internal/model"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search and filter expenses",
	}

	cmd.AddCommand(searchCategoryCmd())
	cmd.AddCommand(searchDescriptionCmd())
	cmd.AddCommand(searchRangeCmd())

	return cmd
}

func searchCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category <id|name>",
		Short: "Find expenses by category",
		Long: `Find expenses by category id or name. A name matches
case-insensitively on a substring; when several categories match, the one
with the lowest id is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var expenses []model.Expense
			if id, convErr := strconv.Atoi(args[0]); convErr == nil {
				expenses, err = svc.SearchByCategoryID(ctx, id)
			} else {
				expenses, err = svc.SearchByCategoryName(ctx, args[0])
			}
			if err != nil {
				return err
			}

			renderExpenses(cmd.OutOrStdout(), expenses)
			return nil
		},
	}
}

func searchDescriptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "description <keyword>",
		Short: "Find expenses whose description contains a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := svc.SearchByDescription(ctx, args[0])
			if err != nil {
				return err
			}

			renderExpenses(cmd.OutOrStdout(), expenses)
			return nil
		},
	}
}

func searchRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <start> <end>",
		Short: "Find expenses within a date range (inclusive)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := svc.FilterByDateRange(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			renderExpenses(cmd.OutOrStdout(), expenses)
			return nil
		},
	}
}
