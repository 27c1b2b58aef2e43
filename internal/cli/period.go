package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/wire"
)

// PeriodCmd returns the period command group for accounting periods.
func PeriodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Manage accounting periods",
		Long:  "Create periods and open or close them for submissions",
	}

	cmd.AddCommand(periodCreateCmd())
	cmd.AddCommand(periodListCmd())
	cmd.AddCommand(periodOpenCmd())
	cmd.AddCommand(periodCloseCmd())
	cmd.AddCommand(periodActiveCmd())
	return cmd
}

func periodCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an accounting period",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, _ := cmd.Flags().GetString("id")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")

			return wire.CalendarAdapter().CreatePeriod(ctx, primary.CreatePeriodRequest{
				ID:        id,
				StartDate: start,
				EndDate:   end,
			})
		},
	}
	cmd.Flags().String("id", "", "Period ID (derived from the start date when omitted)")
	cmd.Flags().String("start", "", "First day of the period (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "Last day of the period (YYYY-MM-DD)")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}

func periodListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all periods, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CalendarAdapter().ListPeriods(context.Background())
		},
	}
}

func periodOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open [period-id]",
		Short: "Open a period for submissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CalendarAdapter().SetPeriodOpen(context.Background(), args[0], true)
		},
	}
}

func periodCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close [period-id]",
		Short: "Close a period for submissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CalendarAdapter().SetPeriodOpen(context.Background(), args[0], false)
		},
	}
}

func periodActiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "active",
		Short: "Show the open period covering a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, _ := cmd.Flags().GetString("date")
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			return wire.CalendarAdapter().ShowActivePeriod(ctx, date)
		},
	}
	cmd.Flags().String("date", "", "ISO date (defaults to today)")
	return cmd
}
