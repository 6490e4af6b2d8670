package main

import (
	"io"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	debug      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "siteguard",
		Short:         "Legacy redirects, content parity and SEO/accessibility audits for the corporate site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: $"+config.ConfigPathEnv+", ./config.yaml or ./config.json)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newServeCommand(opts),
		newParityCommand(opts),
		newAuditCommand(opts),
		newMotionCommand(opts),
		newA11yCommand(opts),
		newCICommand(opts),
		newRulesCommand(opts),
	)
	return cmd
}

// load reads and validates the configuration and builds the logger.
// A quiet logger never writes to the console, keeping stdout free for a JSON document.
func (o *rootOptions) load(cmd *cobra.Command, quiet bool) (*config.GlobalConfig, zerolog.Logger, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log, err := o.newLogger(cmd, cfg, quiet)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, log, nil
}

func (o *rootOptions) loadConfig() (*config.GlobalConfig, error) {
	cfg, err := config.LoadGlobalConfig(o.configPath, zerolog.Nop())
	if err != nil {
		return nil, err
	}
	if o.debug {
		cfg.LogConfig.LogLevel = "debug"
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *rootOptions) newLogger(cmd *cobra.Command, cfg *config.GlobalConfig, quiet bool) (zerolog.Logger, error) {
	log, err := buildLogger(cfg.LogConfig, cmd.ErrOrStderr(), quiet)
	if err != nil {
		return zerolog.Nop(), common.WrapError(err, "failed to initialize logger")
	}
	return log, nil
}

func buildLogger(cfg config.LogConfig, console io.Writer, quiet bool) (zerolog.Logger, error) {
	builder := logger.NewLoggerBuilder().WithConfig(cfg).WithConsoleOutput(console)
	if quiet {
		builder = builder.WithoutConsole()
	}
	l, err := builder.Build()
	if err != nil {
		return zerolog.Nop(), err
	}
	return *l.GetZerolog(), nil
}
