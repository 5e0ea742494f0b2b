package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/nfarrell/tally/internal/report"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spending reports",
	}

	cmd.AddCommand(reportSummaryCmd())
	cmd.AddCommand(reportMonthlyCmd())
	cmd.AddCommand(reportTotalCmd())
	cmd.AddCommand(reportExportCmd())

	return cmd
}

func reportSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Per-category spending against budget limits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summary, err := svc.SpendingSummary(ctx)
			if err != nil {
				return fmt.Errorf("failed to get spending summary: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Transactions"),
				headerStyle.Render("Total Spent"),
				headerStyle.Render("Budget"),
				headerStyle.Render("Remaining"),
				headerStyle.Render("% Used"))
			for _, row := range summary {
				fmt.Fprintf(w, "%s\t%d\t$%.2f\t$%.2f\t$%.2f\t%.2f%%\n",
					row.Category, row.TransactionCount, row.TotalSpent,
					row.BudgetLimit, row.RemainingBudget, row.PercentUsed)
			}
			_ = w.Flush()

			total, err := svc.TotalSpending(ctx)
			if err != nil {
				return fmt.Errorf("failed to get total spending: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 50))
			fmt.Fprintf(cmd.OutOrStdout(), "GRAND TOTAL: $%.2f\n", total)
			return nil
		},
	}
}

func reportMonthlyCmd() *cobra.Command {
	var (
		year  int
		month int
	)

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Per-category totals for one month",
		Long:  `Per-category totals for a calendar month. Defaults to the current month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rows, err := svc.MonthlySpending(ctx, year, month)
			if err != nil {
				return fmt.Errorf("failed to get monthly spending: %w", err)
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), subtleStyle.Render("No expenses found for this period."))
				return nil
			}

			var total float64
			for _, row := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n  Total: $%.2f\n  Transactions: %d\n",
					row.Category, row.Total, row.TransactionCount)
				total += row.Total
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 50))
			fmt.Fprintf(cmd.OutOrStdout(), "MONTHLY TOTAL: $%.2f\n", total)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")

	return cmd
}

func reportTotalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Total spending across all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			total, err := svc.TotalSpending(ctx)
			if err != nil {
				return fmt.Errorf("failed to get total spending: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "TOTAL SPENDING: $%.2f\n", total)
			return nil
		},
	}
}

func reportExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the full text report to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			filename := "expense_report.txt"
			if len(args) == 1 {
				filename = args[0]
			}

			svc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			f, err := os.Create(filename)
			if err != nil {
				return fmt.Errorf("failed to create report file: %w", err)
			}
			defer func() { _ = f.Close() }()

			if err := report.Write(ctx, svc, f); err != nil {
				return err
			}

			fmt.Println(successStyle.Render(fmt.Sprintf("Report exported to %q.", filename)))
			return nil
		},
	}
}
