package db

// SchemaSQL is the complete schema for fresh tally installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests load it via GetSchemaSQL() against an in-memory database, so a
// repository referencing a column that does not exist here fails immediately
// with "no such column" at development time, not in production.
//
// When adding columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Users (employees, managers, admins)
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	full_name TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('employee', 'manager', 'admin')) DEFAULT 'employee',
	manager_id TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (manager_id) REFERENCES users(id)
);

-- Accounting periods scoping entries for submission and review
CREATE TABLE IF NOT EXISTS periods (
	id TEXT PRIMARY KEY,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	open INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Closed days (holidays and company closures); no hours on these dates
CREATE TABLE IF NOT EXISTS closed_days (
	date TEXT PRIMARY KEY,
	label TEXT NOT NULL DEFAULT ''
);

-- Time entries (the workflow unit)
CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	period_id TEXT NOT NULL,
	task TEXT NOT NULL,
	project_id TEXT,
	date TEXT NOT NULL,
	quantity REAL NOT NULL CHECK(quantity >= 0),
	description TEXT,
	status TEXT NOT NULL CHECK(status IN ('draft', 'submitted', 'approved', 'rejected')) DEFAULT 'draft',
	rejection_reason TEXT,
	submitted_at DATETIME,
	reviewed_by TEXT,
	reviewed_at DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (owner_id) REFERENCES users(id),
	FOREIGN KEY (period_id) REFERENCES periods(id),
	FOREIGN KEY (reviewed_by) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_entries_owner_period ON entries(owner_id, period_id);
CREATE INDEX IF NOT EXISTS idx_entries_owner_date ON entries(owner_id, date);
CREATE INDEX IF NOT EXISTS idx_entries_period_status ON entries(period_id, status);
`

// GetSchemaSQL returns the authoritative schema for tests and fresh installs.
func GetSchemaSQL() string {
	return SchemaSQL
}
