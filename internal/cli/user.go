package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/wire"
)

// UserCmd returns the user command group for the user directory.
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
		Long:  "Create and list the employees, managers, and admins of the directory",
	}

	cmd.AddCommand(userCreateCmd())
	cmd.AddCommand(userListCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			username, _ := cmd.Flags().GetString("username")
			name, _ := cmd.Flags().GetString("name")
			password, _ := cmd.Flags().GetString("password")
			role, _ := cmd.Flags().GetString("role")
			manager, _ := cmd.Flags().GetString("manager")

			return wire.UserAdapter().Create(ctx, primary.CreateUserRequest{
				Username:  username,
				FullName:  name,
				Password:  password,
				Role:      role,
				ManagerID: manager,
			})
		},
	}
	cmd.Flags().String("username", "", "Login name")
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("password", "", "Initial password")
	cmd.Flags().String("role", primary.RoleEmployee, "Role: employee, manager, or admin")
	cmd.Flags().String("manager", "", "Manager user ID (for employees)")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func userListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.UserAdapter().List(context.Background())
		},
	}
}
