package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/ports/secondary"
)

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userRepo secondary.UserRepository
}

// NewUserService creates a new UserService with injected dependencies.
func NewUserService(userRepo secondary.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{userRepo: userRepo}
}

// Authenticate verifies a username/password pair and returns the user.
// Unknown usernames and wrong passwords produce the same error.
func (s *UserServiceImpl) Authenticate(ctx context.Context, username, password string) (*primary.User, error) {
	record, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return recordToUser(record), nil
}

// CreateUser registers a new user with a hashed password.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req primary.CreateUserRequest) (*primary.User, error) {
	if req.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	switch req.Role {
	case primary.RoleEmployee, primary.RoleManager, primary.RoleAdmin:
	default:
		return nil, fmt.Errorf("invalid role %q (must be employee, manager or admin)", req.Role)
	}

	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username %s is taken", req.Username)
	} else if !errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if req.ManagerID != "" {
		manager, err := s.userRepo.GetByID(ctx, req.ManagerID)
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, fmt.Errorf("manager %s not found", req.ManagerID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to validate manager: %w", err)
		}
		if manager.Role != primary.RoleManager && manager.Role != primary.RoleAdmin {
			return nil, fmt.Errorf("user %s cannot be a manager (role: %s)", manager.ID, manager.Role)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	nextID, err := s.userRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	record := &secondary.UserRecord{
		ID:           nextID,
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         req.Role,
		ManagerID:    req.ManagerID,
	}
	if err := s.userRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	created, err := s.userRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created user: %w", err)
	}
	return recordToUser(created), nil
}

// GetUser retrieves a user by ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID string) (*primary.User, error) {
	record, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	if err != nil {
		return nil, err
	}
	return recordToUser(record), nil
}

// ListUsers lists all users.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*primary.User, error) {
	records, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*primary.User, len(records))
	for i, r := range records {
		users[i] = recordToUser(r)
	}
	return users, nil
}

// recordToUser converts a persistence record to the port boundary type.
// The password hash stays behind the port.
func recordToUser(r *secondary.UserRecord) *primary.User {
	return &primary.User{
		ID:        r.ID,
		Username:  r.Username,
		FullName:  r.FullName,
		Role:      r.Role,
		ManagerID: r.ManagerID,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure UserServiceImpl implements the interface
var _ primary.UserService = (*UserServiceImpl)(nil)
