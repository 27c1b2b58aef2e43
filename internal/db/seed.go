package db

import (
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SeedDefaultAdmin creates the default admin account when no admin exists
// yet, so a fresh install is usable immediately.
func SeedDefaultAdmin(database *sql.DB) error {
	var count int
	err := database.QueryRow("SELECT COUNT(*) FROM users WHERE role = 'admin'").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	_, err = database.Exec(
		"INSERT INTO users (id, username, full_name, password_hash, role) VALUES (?, ?, ?, ?, 'admin')",
		"USER-001", "admin", "Administrator", string(hash),
	)
	if err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	return nil
}

// SeedFixtures populates the database with development fixtures: a manager
// with one report, an open period around today and a couple of closed days.
func SeedFixtures(database *sql.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("welkom01"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash fixture password: %w", err)
	}

	users := []struct{ id, username, name, role, managerID string }{
		{"USER-002", "mvries", "Mark de Vries", "manager", ""},
		{"USER-003", "jjansen", "Jan Jansen", "employee", "USER-002"},
		{"USER-004", "pbakker", "Petra Bakker", "employee", "USER-002"},
	}
	for _, u := range users {
		var managerID sql.NullString
		if u.managerID != "" {
			managerID = sql.NullString{String: u.managerID, Valid: true}
		}
		if _, err := database.Exec(
			"INSERT INTO users (id, username, full_name, password_hash, role, manager_id) VALUES (?, ?, ?, ?, ?, ?)",
			u.id, u.username, u.name, string(hash), u.role, managerID,
		); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	periodID := fmt.Sprintf("PER-%s", start.Format("2006-01"))
	if _, err := database.Exec(
		"INSERT INTO periods (id, start_date, end_date, open) VALUES (?, ?, ?, 1)",
		periodID, start.Format("2006-01-02"), end.Format("2006-01-02"),
	); err != nil {
		return fmt.Errorf("seed period: %w", err)
	}

	closedDays := []struct{ date, label string }{
		{fmt.Sprintf("%d-12-25", now.Year()), "Eerste kerstdag"},
		{fmt.Sprintf("%d-12-26", now.Year()), "Tweede kerstdag"},
	}
	for _, d := range closedDays {
		if _, err := database.Exec(
			"INSERT INTO closed_days (date, label) VALUES (?, ?)",
			d.date, d.label,
		); err != nil {
			return fmt.Errorf("seed closed days: %w", err)
		}
	}

	return nil
}
