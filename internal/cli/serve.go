package cli

import (
	"github.com/spf13/cobra"

	"travelease/pkg/app"
	"travelease/pkg/config"
)

func NewServeCommand(_ *RootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(serviceName)
			if port != "" {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			cfg.LogConfiguration()

			application, err := app.NewApplication(cfg)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")

	return cmd
}
