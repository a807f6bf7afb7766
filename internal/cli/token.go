package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"travelease/pkg/amadeus"
	"travelease/pkg/config"
	"travelease/pkg/model"
)

// NewTokenCommand performs one credential exchange and prints the bearer token.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Exchange the configured credentials for a provider token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(serviceName)

			provider := amadeus.NewTokenProvider(
				cfg.AmadeusBaseURL,
				amadeus.Credentials{ClientID: cfg.AmadeusClientID, ClientSecret: cfg.AmadeusClientSecret},
				&http.Client{Timeout: cfg.UpstreamTimeout},
			)

			token, err := provider.AcquireToken(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get token: %w", err)
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				return json.NewEncoder(out).Encode(model.TokenResponse{Status: model.StatusSuccess, Token: token})
			}
			_, err = fmt.Fprintln(out, token)
			return err
		},
	}
}
