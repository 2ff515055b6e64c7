package main

import (
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/talentscope/internal/predictor"
	"github.com/fr4nk3nst1ner/talentscope/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive terminal dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return tui.Run(cmd.Context(), cfg, predictor.New(cfg.Predictor.Delay))
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
