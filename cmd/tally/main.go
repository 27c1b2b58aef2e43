package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/cli"
	"github.com/example/tally/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Tally - time entry workflow tracker",
		Version: version.String(),
		Long: `Tally tracks time entries through a submission workflow.
Employees save drafts and submit them; managers approve or reject;
rejected entries can be fixed and resubmitted.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.EntryCmd())
	rootCmd.AddCommand(cli.ReviewCmd())
	rootCmd.AddCommand(cli.CalendarCmd())
	rootCmd.AddCommand(cli.PeriodCmd())
	rootCmd.AddCommand(cli.UserCmd())
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
