package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/db"
	"github.com/example/tally/internal/wire"
)

// SeedCmd returns the seed command that loads development fixtures.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load development fixtures",
		Long: `Seed the database with a manager, two employees, the current month's
period, and a couple of closed days. Intended for local development;
existing rows are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.SeedFixtures(wire.DB()); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}
			fmt.Println("✓ Seeded development fixtures (users, current period, closed days)")
			return nil
		},
	}
}
