package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/wire"
)

// CalendarCmd returns the calendar command group for closed days.
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage closed days",
		Long:  "Register holidays and company closures that block time entries",
	}

	cmd.AddCommand(calendarCloseCmd())
	cmd.AddCommand(calendarReopenCmd())
	cmd.AddCommand(calendarListCmd())
	return cmd
}

func calendarCloseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close [date]",
		Short: "Mark a date as closed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			label, _ := cmd.Flags().GetString("label")
			return wire.CalendarAdapter().AddClosedDay(ctx, args[0], label)
		},
	}
	cmd.Flags().String("label", "", "What the closure is (e.g. a holiday name)")
	cmd.MarkFlagRequired("label")
	return cmd
}

func calendarReopenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reopen [date]",
		Short: "Remove a closed day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			return wire.CalendarAdapter().RemoveClosedDay(ctx, args[0])
		},
	}
}

func calendarListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List closed days for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			year, _ := cmd.Flags().GetInt("year")
			if year == 0 {
				year = time.Now().Year()
			}
			return wire.CalendarAdapter().ListClosedDays(ctx, year)
		},
	}
	cmd.Flags().Int("year", 0, "Calendar year (defaults to the current year)")
	return cmd
}
