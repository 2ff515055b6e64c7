package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/talentscope/internal/estimator"
	"github.com/fr4nk3nst1ner/talentscope/internal/market"
	"github.com/fr4nk3nst1ner/talentscope/internal/models"
	"github.com/fr4nk3nst1ner/talentscope/internal/ui"
	"github.com/fr4nk3nst1ner/talentscope/internal/utils"
)

var (
	marketTop     int
	marketJSON    bool
	marketSort    string
	marketTracked bool
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Show job market data",
}

var marketSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Headline market counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := market.Summary()
		return show(cmd.OutOrStdout(), s, func(w io.Writer) error { return ui.RenderSummary(w, s) })
	},
}

var marketSkillsCmd = &cobra.Command{
	Use:   "skills [name]",
	Short: "Most demanded skills, or the details of one skill",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMarketSkills,
}

var marketCompaniesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Companies ranked by open positions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		companies := market.TopCompanies(topN())
		return show(cmd.OutOrStdout(), companies, func(w io.Writer) error { return ui.RenderCompanies(w, companies) })
	},
}

var marketLocationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Hiring volume and salary by city",
	Args:  cobra.NoArgs,
	RunE:  runMarketLocations,
}

var marketStatesCmd = &cobra.Command{
	Use:   "states",
	Short: "Highest paying US states",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		states := utils.Head(market.StatesBySalary(), topN())
		return show(cmd.OutOrStdout(), states, func(w io.Writer) error { return ui.RenderStates(w, states) })
	},
}

var marketRolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Roles known to the salary predictor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		roles := estimator.Roles()
		return show(cmd.OutOrStdout(), roles, func(w io.Writer) error { return ui.RenderRoles(w, roles) })
	},
}

var marketTrendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Monthly postings and salary trends",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		trends := market.Trends()
		return show(cmd.OutOrStdout(), trends, func(w io.Writer) error { return ui.RenderTrends(w, trends) })
	},
}

func init() {
	marketCmd.PersistentFlags().IntVar(&marketTop, "top", 0, "Number of rows to show (default: display.top_n from config)")
	marketCmd.PersistentFlags().BoolVar(&marketJSON, "json", false, "Print the data as JSON")
	marketLocationsCmd.Flags().StringVar(&marketSort, "sort", "jobs", "Sort by jobs or salary")
	marketSkillsCmd.Flags().BoolVar(&marketTracked, "tracked", false, "List the sample of tracked skill names")

	marketCmd.AddCommand(marketSummaryCmd)
	marketCmd.AddCommand(marketSkillsCmd)
	marketCmd.AddCommand(marketCompaniesCmd)
	marketCmd.AddCommand(marketLocationsCmd)
	marketCmd.AddCommand(marketStatesCmd)
	marketCmd.AddCommand(marketRolesCmd)
	marketCmd.AddCommand(marketTrendsCmd)
	rootCmd.AddCommand(marketCmd)
}

func runMarketSkills(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if marketTracked {
		tracked := market.TrackedSkills()
		return show(out, tracked, func(w io.Writer) error {
			fmt.Fprintf(w, "Skills tracked (%s), sample:\n", utils.FormatCount(market.Summary().SkillsTracked))
			fmt.Fprintln(w, strings.Join(tracked, ", "))
			return nil
		})
	}
	if len(args) == 0 {
		skills := market.TopSkills(topN())
		return show(out, skills, func(w io.Writer) error { return ui.RenderSkills(w, skills) })
	}

	detail, ok := market.SkillInfo(args[0])
	if !ok {
		return fmt.Errorf("unknown skill %q", args[0])
	}
	return show(out, detail, func(w io.Writer) error {
		if err := ui.RenderSkills(w, []models.SkillDemand{detail.SkillDemand}); err != nil {
			return err
		}
		fmt.Fprintln(w, detail.Description)
		fmt.Fprintf(w, "Beginner to intermediate: %s\n", detail.BeginnerToIntermediate)
		fmt.Fprintf(w, "Intermediate to advanced: %s\n", detail.IntermediateToCoder)
		return nil
	})
}

func runMarketLocations(cmd *cobra.Command, _ []string) error {
	if !utils.IsValidLocationSort(marketSort) {
		return fmt.Errorf("invalid sort %q: must be jobs or salary", marketSort)
	}

	var locations []models.LocationStat
	if strings.EqualFold(marketSort, "salary") {
		locations = market.LocationsBySalary()
	} else {
		locations = market.LocationsByJobs()
	}
	locations = utils.Head(locations, topN())
	return show(cmd.OutOrStdout(), locations, func(w io.Writer) error { return ui.RenderLocations(w, locations) })
}

// show prints v as JSON with --json, otherwise through render
func show(w io.Writer, v any, render func(io.Writer) error) error {
	if !marketJSON {
		return render(w)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func topN() int {
	if marketTop > 0 {
		return marketTop
	}
	return cfg.Display.TopN
}
