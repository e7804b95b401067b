package main

import (
	"os"
	"os/signal"
	"syscall"

	"jifdict/ui"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		addr     string
		dataPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve journal lookups over HTTP",
		Long: `Load data.json once and answer lookups over HTTP:

  GET /healthz
  GET /api/journals/:name
  GET /api/journals?q=<name>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = appConfig.Server.Addr
			}
			if dataPath == "" {
				dataPath = appConfig.Paths.OutputFile
			}
			gin.SetMode(appConfig.Server.GinMode)

			matcher, err := loadMatcher(cmd.Context(), lookupSource, dataPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return ui.NewServer(matcher, logger).Start(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from JIF_SERVE_ADDR or :8080)")
	cmd.Flags().StringVar(&dataPath, "data", "", "Lookup file (default from JIF_OUTPUT_FILE or data.json)")
	return cmd
}
