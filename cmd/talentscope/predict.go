package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/talentscope/internal/client"
	"github.com/fr4nk3nst1ner/talentscope/internal/estimator"
	"github.com/fr4nk3nst1ner/talentscope/internal/models"
	"github.com/fr4nk3nst1ner/talentscope/internal/predictor"
	"github.com/fr4nk3nst1ner/talentscope/internal/ui"
)

var (
	predictRole       string
	predictExperience string
	predictLocation   string
	predictNoDelay    bool
	predictServer     string
	predictProxy      string
	predictJSON       bool
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict the salary for a role, experience level and location",
	Long: `Predict a salary in $K from the role's base compensation, the experience
multiplier (Junior 0.75, Mid 1.00, Senior 1.35) and the location multiplier.

Unknown roles fall back to a $95K base and unknown locations to a 1.0
multiplier; the prediction never fails.`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringVarP(&predictRole, "role", "r", estimator.DefaultRole, "Job role")
	predictCmd.Flags().StringVarP(&predictExperience, "experience", "e", string(estimator.DefaultExperience), "Experience level: junior, mid or senior")
	predictCmd.Flags().StringVarP(&predictLocation, "location", "l", estimator.DefaultLocation, "Location")
	predictCmd.Flags().BoolVar(&predictNoDelay, "no-delay", false, "Skip the simulated computing delay")
	predictCmd.Flags().StringVar(&predictServer, "server", "", "Ask a running talentscope server instead of predicting locally")
	predictCmd.Flags().StringVar(&predictProxy, "proxy", "", "Proxy URL to use with --server")
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "Print the estimate as JSON")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	if _, ok := estimator.ParseExperienceTier(predictExperience); !ok {
		zlog.Warn("unknown experience level, using Mid", zap.String("experience", predictExperience))
	}
	req := models.EstimateRequest{
		Role:       predictRole,
		Experience: predictExperience,
		Location:   predictLocation,
	}

	var (
		est models.Estimate
		err error
	)
	if predictServer != "" {
		est, err = predictRemote(cmd.Context(), req)
	} else {
		est, err = predictLocal(cmd, req)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if predictJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(est)
	}
	return ui.RenderEstimate(out, est)
}

func predictLocal(cmd *cobra.Command, req models.EstimateRequest) (models.Estimate, error) {
	delay := cfg.Predictor.Delay
	if predictNoDelay {
		delay = 0
	}
	p := predictor.New(delay)

	if predictJSON {
		return p.Predict(cmd.Context(), req)
	}

	var est models.Estimate
	err := ui.Computing(cmd.Context(), cmd.ErrOrStderr(), p.Delay(), func(ctx context.Context) error {
		var err error
		est, err = p.Predict(ctx, req)
		return err
	})
	return est, err
}

func predictRemote(ctx context.Context, req models.EstimateRequest) (models.Estimate, error) {
	opts := []client.Option{client.WithProxy(predictProxy)}
	if cfg.Auth.Enabled() {
		opts = append(opts, client.WithBasicAuth(cfg.Auth.Username, cfg.Auth.Password))
	}
	c, err := client.New(predictServer, opts...)
	if err != nil {
		return models.Estimate{}, err
	}

	zlog.Debug("requesting remote estimate", zap.String("server", predictServer))
	est, err := c.Estimate(ctx, req)
	if err != nil {
		return models.Estimate{}, fmt.Errorf("remote prediction failed: %w", err)
	}
	return est, nil
}
