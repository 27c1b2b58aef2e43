package primary

import "context"

// User roles. Managers review their direct reports; admins review everyone.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// UserService defines the primary port for the user directory.
type UserService interface {
	// Authenticate verifies a username/password pair and returns the user.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID string) (*User, error)

	// ListUsers lists all users.
	ListUsers(ctx context.Context) ([]*User, error)
}

// CreateUserRequest contains parameters for registering a user.
type CreateUserRequest struct {
	Username  string
	FullName  string
	Password  string
	Role      string
	ManagerID string // optional
}

// User represents a user at the port boundary. The password hash never
// crosses this boundary.
type User struct {
	ID        string
	Username  string
	FullName  string
	Role      string
	ManagerID string
	CreatedAt string
}
