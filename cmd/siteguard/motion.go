package main

import (
	"github.com/aleister1102/siteguard/internal/motion"
	"github.com/spf13/cobra"
)

func newMotionCommand(opts *rootOptions) *cobra.Command {
	var render motion.RenderOptions

	cmd := &cobra.Command{
		Use:   "motion [paths...]",
		Short: "Flag animations that ignore the reduced-motion preference",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd, render.JSON)
			if err != nil {
				return err
			}

			report, err := motion.NewScanner(cfg.ScanConfig, args, log).Scan()
			if err != nil {
				return err
			}
			if err := motion.Render(cmd.OutOrStdout(), report, render); err != nil {
				return err
			}
			return exitWith(motion.ExitCode(report, render.JSON))
		},
	}
	cmd.Flags().BoolVar(&render.Verbose, "verbose", false, "also list good practices")
	cmd.Flags().BoolVar(&render.JSON, "json", false, "emit a machine-readable report; always exits 0")
	return cmd
}
