package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/starapp/internal/infra/clock"
	"github.com/aalvaropc/starapp/internal/infra/httpapi"
	"github.com/aalvaropc/starapp/internal/infra/logger"
	"github.com/aalvaropc/starapp/internal/usecase"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the zodiac API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = env.cfg.Server.Addr
			}

			level := env.cfg.Log.Level
			if opts.debug {
				level = "debug"
			}
			log := logger.New(cmd.ErrOrStderr(), level)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := httpapi.NewRouter(httpapi.Deps{
				Reveal:         usecase.NewRevealReading(clock.System{}),
				Signs:          usecase.NewListSigns(),
				Logger:         log,
				AllowedOrigins: env.cfg.Server.AllowedOrigins,
			})

			return httpapi.NewServer(addr, router, log).Run(ctx)
		},
	}

	c.Flags().StringVar(&addr, "addr", ":8080", "Listen address (defaults to server.addr from starapp.yaml)")
	return c
}
