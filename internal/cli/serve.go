package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/adapters/httpapi"
	"github.com/example/tally/internal/wire"
)

// ServeCmd returns the serve command that runs the HTTP API.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the REST API. Clients authenticate with a JWT obtained from
POST /api/login; the signing secret comes from the config file or
TALLY_JWT_SECRET.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			if cfg.JWTSecret == "" {
				return fmt.Errorf("no JWT secret configured: set jwt_secret in the config file or TALLY_JWT_SECRET")
			}

			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = cfg.HTTPAddr
			}

			server := httpapi.NewServer(
				wire.EntryService(),
				wire.ReviewService(),
				wire.CalendarService(),
				wire.UserService(),
				httpapi.NewAuthenticator(cfg.JWTSecret),
			)

			fmt.Printf("Listening on %s\n", addr)
			return http.ListenAndServe(addr, server.Router())
		},
	}
	cmd.Flags().String("addr", "", "Listen address (defaults to the configured http_addr)")
	return cmd
}
