package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/talentscope/internal/models"
	"github.com/fr4nk3nst1ner/talentscope/internal/utils"
)

const barWidth = 24

// ColorizeSalary colors a salary in $K by bracket
func ColorizeSalary(k int) string {
	formatted := utils.FormatSalaryK(k)

	switch {
	case k >= 200:
		return pterm.Green(formatted) // $200K and up
	case k >= 150:
		return pterm.LightGreen(formatted) // $150K-$200K
	case k >= 100:
		return pterm.Yellow(formatted) // $100K-$150K
	default:
		return pterm.Red(formatted) // under $100K
	}
}

// RenderEstimate prints a prediction with its band and any fallbacks used
func RenderEstimate(w io.Writer, est models.Estimate) error {
	res := est.Result
	fmt.Fprintf(w, "%s %s\n", pterm.Bold.Sprint("Predicted Salary:"), ColorizeSalary(res.Predicted))
	fmt.Fprintf(w, "Range:            %s (%s to %s)\n", utils.FormatRange(res.LowerBound, res.UpperBound),
		utils.FormatSalary(res.LowerBound), utils.FormatSalary(res.UpperBound))
	fmt.Fprintf(w, "Confidence:       %d%%\n", res.ConfidencePercent)
	fmt.Fprintf(w, "Formula:          %s %s %s\n",
		utils.FormatSalaryK(est.BaseCompensation),
		utils.FormatMultiplier(est.ExperienceMultiplier),
		utils.FormatMultiplier(est.LocationMultiplier))

	if !est.RoleKnown {
		fmt.Fprintf(w, "%s unknown role %q, using base %s\n", pterm.Yellow("note:"), est.Request.Role, utils.FormatSalaryK(est.BaseCompensation))
	}
	if !est.ExperienceKnown {
		fmt.Fprintf(w, "%s unknown experience %q, using Mid\n", pterm.Yellow("note:"), est.Request.Experience)
	}
	if !est.LocationKnown {
		fmt.Fprintf(w, "%s unknown location %q, using %s\n", pterm.Yellow("note:"), est.Request.Location, utils.FormatMultiplier(est.LocationMultiplier))
	}
	return nil
}

// RenderSummary prints the headline market counters
func RenderSummary(w io.Writer, s models.Summary) error {
	data := pterm.TableData{
		{"Metric", "Value"},
		{"Total Job Postings", utils.FormatCount(s.TotalPostings)},
		{"Unique Roles", utils.FormatCount(s.UniqueRoles)},
		{"Companies Hiring", utils.FormatCount(s.UniqueCompanies)},
		{"Skills Tracked", utils.FormatCount(s.SkillsTracked)},
		{"Average Salary", ColorizeSalary(s.AvgSalary)},
	}
	for i, loc := range s.TopLocations {
		data = append(data, []string{fmt.Sprintf("Top Location #%d", i+1), fmt.Sprintf("%s (%s)", loc.Location, utils.FormatCount(loc.Count))})
	}
	for i, role := range s.TopRoles {
		data = append(data, []string{fmt.Sprintf("Top Role #%d", i+1), fmt.Sprintf("%s (%s)", role.Title, utils.FormatCount(role.Count))})
	}
	return renderTable(w, data)
}

// RenderSkills prints skills with their demand and salary
func RenderSkills(w io.Writer, skills []models.SkillDemand) error {
	data := pterm.TableData{{"Skill", "Demand", "", "Avg Salary"}}
	for _, s := range skills {
		data = append(data, []string{
			s.Skill,
			strconv.Itoa(s.Demand) + "%",
			pterm.Cyan(utils.Bar(s.Demand, 100, barWidth)),
			ColorizeSalary(s.Salary),
		})
	}
	return renderTable(w, data)
}

// RenderCompanies prints companies ranked by open positions
func RenderCompanies(w io.Writer, companies []models.CompanyRank) error {
	data := pterm.TableData{{"#", "Company", "Open Positions"}}
	for _, c := range companies {
		data = append(data, []string{strconv.Itoa(c.Rank), c.Name, utils.FormatCount(c.Jobs)})
	}
	return renderTable(w, data)
}

// RenderLocations prints cities with their job counts and average salaries
func RenderLocations(w io.Writer, locations []models.LocationStat) error {
	maxJobs := 0
	for _, l := range locations {
		maxJobs = max(maxJobs, l.Jobs)
	}

	data := pterm.TableData{{"City", "Jobs", "", "Avg Salary"}}
	for _, l := range locations {
		data = append(data, []string{
			l.City,
			utils.FormatCount(l.Jobs),
			pterm.Magenta(utils.Bar(l.Jobs, maxJobs, barWidth)),
			ColorizeSalary(l.AvgSalary),
		})
	}
	return renderTable(w, data)
}

// RenderStates prints the salary spread per state
func RenderStates(w io.Writer, states []models.StateStat) error {
	data := pterm.TableData{{"State", "Avg", "Min", "Max", "Jobs"}}
	for _, s := range states {
		data = append(data, []string{
			s.State,
			ColorizeSalary(s.AvgSalary),
			utils.FormatSalaryK(s.MinSalary),
			utils.FormatSalaryK(s.MaxSalary),
			utils.FormatCount(s.Jobs),
		})
	}
	return renderTable(w, data)
}

// RenderRoles prints the predictor's role table
func RenderRoles(w io.Writer, roles []models.RoleEntry) error {
	data := pterm.TableData{{"Role", "Base (Mid)"}}
	for _, r := range roles {
		data = append(data, []string{r.Label, ColorizeSalary(r.BaseCompensation)})
	}
	return renderTable(w, data)
}

// RenderTrends prints the monthly postings and salary curves side by side
func RenderTrends(w io.Writer, t models.Trends) error {
	salaries := make(map[string]models.SalaryTrendPoint, len(t.SalaryTrend))
	for _, p := range t.SalaryTrend {
		salaries[p.Month] = p
	}

	data := pterm.TableData{{"Month", "Postings", "Analyst", "Scientist", "Engineer"}}
	for _, m := range t.PostingsByMonth {
		row := []string{m.Month, utils.FormatCount(m.Postings), "-", "-", "-"}
		if p, ok := salaries[m.Month]; ok {
			row[2] = utils.FormatSalaryK(p.Analyst)
			row[3] = utils.FormatSalaryK(p.Scientist)
			row[4] = utils.FormatSalaryK(p.Engineer)
		}
		data = append(data, row)
	}
	return renderTable(w, data)
}

func renderTable(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
