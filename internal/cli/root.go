package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/starapp/internal/domain"
	"github.com/aalvaropc/starapp/internal/infra/clock"
	"github.com/aalvaropc/starapp/internal/infra/config"
	"github.com/aalvaropc/starapp/internal/infra/fsconfig"
	"github.com/aalvaropc/starapp/internal/infra/logger"
	"github.com/aalvaropc/starapp/internal/ui/tui"
	"github.com/aalvaropc/starapp/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "starapp",
		Short:        "StarApp: discover your zodiac sign and birthstone",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			env, err := loadEnv()

			cleanup, _ := logger.Setup(logger.Config{
				Root:  env.logRoot(),
				Level: env.cfg.Log.Level,
				Debug: opts.debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			if err != nil {
				logger.L().Error("config.load_failed", "root", env.root, "err", err)
				return err
			}

			deps := tui.Deps{
				Reveal: usecase.NewRevealReading(clock.System{}),
				Accent: env.cfg.UI.Accent,
				Logger: logger.L(),
				Debug:  opts.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .starapp/logs/starapp.log")

	cmd.AddCommand(
		resolveCmd(),
		signsCmd(),
		serveCmd(opts),
		initCmd(fsconfig.NewInitializer()),
		versionCmd(),
	)
	return cmd
}

// cliEnv is the working directory plus whatever starapp.yaml was found above it.
type cliEnv struct {
	wd   string
	root string
	cfg  domain.Config
}

func loadEnv() (cliEnv, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	cfg, root, err := config.Discover(wd)
	return cliEnv{wd: wd, root: root, cfg: cfg}, err
}

func (e cliEnv) logRoot() string {
	if e.root != "" {
		return e.root
	}
	return e.wd
}

// pickFormat lets an explicit --format win over output.format from config.
func pickFormat(cmd *cobra.Command, flag string, cfg domain.Config) string {
	if cmd.Flags().Changed("format") || cfg.Output.Format == "" {
		return flag
	}
	return cfg.Output.Format
}
