package main

import (
	"fmt"

	"github.com/aleister1102/siteguard/internal/redirect"
	"github.com/spf13/cobra"
)

func newRulesCommand(opts *rootOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective redirect table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd, false)
			if err != nil {
				return err
			}
			table, err := redirect.LoadTable(cfg.RedirectConfig.RulesFile, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if check {
				_, err := fmt.Fprintf(out, "%d redirect rules OK\n", table.Len())
				return err
			}
			for _, rule := range table.Rules() {
				fmt.Fprintf(out, "%d  %s -> %s\n", rule.StatusCode(), rule.Source, rule.Destination)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "only validate the table")
	return cmd
}
