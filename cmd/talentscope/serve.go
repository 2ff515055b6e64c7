package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/talentscope/internal/metrics"
	"github.com/fr4nk3nst1ner/talentscope/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server with the JSON API, the HTML overview page and
Prometheus metrics. Set WEB_USERNAME and WEB_PASSWORD to protect /api/.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: server.port from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	srv, err := server.New(cfg, zlog, metrics.New())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Run(cmd.Context())
}
