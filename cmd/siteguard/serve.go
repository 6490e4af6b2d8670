package main

import (
	"github.com/aleister1102/siteguard/internal/redirect"
	"github.com/aleister1102/siteguard/internal/seo"
	"github.com/aleister1102/siteguard/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var listenAddr, upstream string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the front door: legacy redirects, sitemap, robots and the upstream proxy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd, false)
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.ServerConfig.ListenAddr = listenAddr
			}
			if upstream != "" {
				cfg.ServerConfig.UpstreamURL = upstream
			}

			table, err := redirect.LoadTable(cfg.RedirectConfig.RulesFile, log)
			if err != nil {
				return err
			}
			source := seo.NewContentSource(cfg.ServerConfig.SiteURL, cfg.ContentConfig, cfg.ServerConfig.DisallowPaths, log)

			srv, err := server.New(cfg.ServerConfig, table, source, log)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&listenAddr, "addr", "", "listen address (overrides server_config.listen_addr)")
	cmd.Flags().StringVar(&upstream, "upstream", "", "upstream site URL (overrides server_config.upstream_url)")
	return cmd
}
