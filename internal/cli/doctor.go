package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/db"
	"github.com/example/tally/internal/version"
	"github.com/example/tally/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the tally environment",
		Long: `Health check for the local tally installation.

Validates:
- Database file is reachable and answers a ping
- Schema is migrated to the current version
- A default admin account exists
- The configured daily cap is sane

Examples:
  tally doctor          # Run full health check
  tally doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{}
			hasErrors := false

			results = append(results, checkDatabase())
			results = append(results, checkSchemaVersion())
			results = append(results, checkAdminAccount())
			results = append(results, checkDailyCap())

			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
				}
			}

			if quiet {
				if hasErrors {
					os.Exit(1)
				}
				return nil
			}

			fmt.Printf("tally doctor (%s)\n\n", version.String())
			for _, r := range results {
				fmt.Printf("%s %s\n", r.Status, r.Name)
				if r.Status != "✓" && r.Details != "" {
					fmt.Printf("    %s\n", r.Details)
				}
			}
			fmt.Println()

			if hasErrors {
				fmt.Println("Issues found. Fix the ✗ items above and run doctor again.")
				os.Exit(1)
			}
			fmt.Println("All checks passed.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Exit code only, no output")
	return cmd
}

func checkDatabase() CheckResult {
	database := wire.DB()
	if err := database.Ping(); err != nil {
		return CheckResult{Name: "Database reachable", Status: "✗", Details: err.Error()}
	}
	return CheckResult{Name: "Database reachable", Status: "✓"}
}

func checkSchemaVersion() CheckResult {
	v, err := db.SchemaVersion(wire.DB())
	if err != nil {
		return CheckResult{Name: "Schema version", Status: "✗", Details: err.Error()}
	}
	if v < 1 {
		return CheckResult{Name: "Schema version", Status: "✗", Details: "schema not migrated; delete the database file and retry"}
	}
	return CheckResult{Name: fmt.Sprintf("Schema version (v%d)", v), Status: "✓"}
}

func checkAdminAccount() CheckResult {
	var count int
	row := wire.DB().QueryRow(`SELECT COUNT(*) FROM users WHERE role = 'admin'`)
	if err := row.Scan(&count); err != nil {
		return CheckResult{Name: "Admin account", Status: "✗", Details: err.Error()}
	}
	if count == 0 {
		return CheckResult{Name: "Admin account", Status: "✗", Details: "no admin user; run any command once to seed USER-001"}
	}
	return CheckResult{Name: "Admin account", Status: "✓"}
}

func checkDailyCap() CheckResult {
	hours := wire.Config().DailyCapHours
	if hours <= 0 || hours > 24 {
		return CheckResult{
			Name:    "Daily cap",
			Status:  "⚠",
			Details: fmt.Sprintf("configured cap %.2f is outside 0..24", hours),
		}
	}
	return CheckResult{Name: fmt.Sprintf("Daily cap (%.1f hours)", hours), Status: "✓"}
}
