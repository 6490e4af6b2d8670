package main

import (
	"github.com/aleister1102/siteguard/internal/a11y"
	"github.com/spf13/cobra"
)

func newA11yCommand(opts *rootOptions) *cobra.Command {
	var render a11y.RenderOptions

	cmd := &cobra.Command{
		Use:   "a11y [paths...]",
		Short: "Scan JSX/HTML sources for common accessibility mistakes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd, render.JSON)
			if err != nil {
				return err
			}

			report, err := a11y.NewScanner(cfg.ScanConfig, args, log).Scan()
			if err != nil {
				return err
			}
			if err := a11y.Render(cmd.OutOrStdout(), report, render); err != nil {
				return err
			}
			return exitWith(a11y.ExitCode(report, render.JSON))
		},
	}
	cmd.Flags().BoolVar(&render.Verbose, "verbose", false, "also list good practices")
	cmd.Flags().BoolVar(&render.JSON, "json", false, "emit a machine-readable report; always exits 0")
	return cmd
}
