package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

const serviceName = "travelease"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "travelease",
		Short: "TravelEase travel booking API",
		Long: `TravelEase proxies flight and hotel shopping to the Amadeus self-service API.

When the provider is unavailable the service answers with demo data so the
booking flow can be exercised end to end.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewSeatMapCommand(opts))

	return cmd
}
