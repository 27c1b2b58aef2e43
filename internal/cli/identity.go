// Package cli contains the cobra command definitions. Commands parse
// flags, resolve the caller identity and delegate to the CLI adapters.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// callerID resolves the acting user for a command. Every workflow
// operation runs on behalf of an explicit user; there is no implicit
// identity.
func callerID(cmd *cobra.Command) (string, error) {
	id, _ := cmd.Flags().GetString("as")
	if id == "" {
		id = os.Getenv("TALLY_USER")
	}
	if id == "" {
		return "", fmt.Errorf("caller identity required: pass --as USER-ID or set TALLY_USER")
	}
	return id, nil
}

func addIdentityFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String("as", "", "User ID to act as (defaults to $TALLY_USER)")
}
