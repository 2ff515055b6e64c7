// Package main is the talentscope command line tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/talentscope/internal/config"
	"github.com/fr4nk3nst1ner/talentscope/internal/logger"
	"github.com/fr4nk3nst1ner/talentscope/internal/ui"
)

var (
	configPath string
	silence    bool
	noBanner   bool
	verbose    bool

	// set by PersistentPreRunE
	cfg  *config.AppConfig
	zlog *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "talentscope",
	Short: "Data job market intelligence and salary prediction",
	Long: `TalentScope explores the data job market: postings, in-demand skills,
salaries by role and location, and a salary predictor based on role,
experience and location multipliers.

Run "talentscope dashboard" for the interactive terminal dashboard or
"talentscope serve" for the HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		if verbose || cmd.Name() == "serve" {
			zlog, err = logger.New(level, cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		} else {
			zlog = zap.NewNop()
		}

		if wantsBanner(cmd) {
			ui.PrintBanner(false)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if zlog != nil {
			_ = zlog.Sync()
		}
	},
}

// wantsBanner reports whether the banner should precede the command output.
// Machine-readable and full-screen commands never get one.
func wantsBanner(cmd *cobra.Command) bool {
	if silence || noBanner || cfg.Display.SilenceBanner {
		return false
	}
	if cmd.Name() == "dashboard" {
		return false
	}
	if f := cmd.Flags().Lookup("json"); f != nil && f.Value.String() == "true" {
		return false
	}
	return true
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: talentscope.yaml)")
	// Banner control flags (two aliases for the same functionality)
	rootCmd.PersistentFlags().BoolVar(&silence, "silence", false, "Silence the banner")
	rootCmd.PersistentFlags().BoolVar(&noBanner, "nobanner", false, "Silence the banner (alias for --silence)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
