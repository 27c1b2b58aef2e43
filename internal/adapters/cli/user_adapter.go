package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/tally/internal/ports/primary"
)

// UserAdapter is a thin adapter that translates CLI operations to
// UserService calls.
type UserAdapter struct {
	service primary.UserService
	out     io.Writer
}

// NewUserAdapter creates a new UserAdapter with the given service.
func NewUserAdapter(service primary.UserService, out io.Writer) *UserAdapter {
	return &UserAdapter{
		service: service,
		out:     out,
	}
}

// Create registers a new user.
func (a *UserAdapter) Create(ctx context.Context, req primary.CreateUserRequest) error {
	user, err := a.service.CreateUser(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created user %s: %s (%s)\n", user.ID, user.Username, user.Role)
	return nil
}

// List lists all users.
func (a *UserAdapter) List(ctx context.Context) error {
	users, err := a.service.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-15s %-20s %-10s %s\n", "ID", "USERNAME", "NAME", "ROLE", "MANAGER")
	fmt.Fprintln(a.out, "──────────────────────────────────────────────────────────────────")
	for _, u := range users {
		manager := u.ManagerID
		if manager == "" {
			manager = "-"
		}
		fmt.Fprintf(a.out, "%-10s %-15s %-20s %-10s %s\n", u.ID, u.Username, u.FullName, u.Role, manager)
	}
	fmt.Fprintln(a.out)

	return nil
}
