package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fr4nk3nst1ner/talentscope/internal/dashboard"
	"github.com/fr4nk3nst1ner/talentscope/internal/estimator"
	"github.com/fr4nk3nst1ner/talentscope/internal/market"
	"github.com/fr4nk3nst1ner/talentscope/internal/utils"
)

const (
	barWidth     = 20
	nameWidth    = 22
	trackedWidth = 64
)

// View implements tea.Model
func (m Model) View() string {
	header := m.styles.Header.Render("TalentScope") + m.styles.Muted.Render("  data job market intelligence")
	content := m.styles.Content.Render(m.renderPage())

	var body string
	switch {
	case !m.state.Mobile:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), content)
	case m.state.SidebarOpen:
		body = m.renderSidebar()
	default:
		body = content
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", m.renderFooter())
}

func (m Model) renderSidebar() string {
	var sb strings.Builder
	for i, p := range dashboard.Pages() {
		line := fmt.Sprintf("%d %s", i+1, p.Label)
		if p.ID == m.state.Page {
			sb.WriteString(m.styles.Active.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteByte('\n')
	}
	return m.styles.Sidebar.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) renderFooter() string {
	pages := dashboard.Pages()
	hints := fmt.Sprintf("page %d/%d  tab/shift+tab page  1-%d jump  q quit", m.state.PageIndex()+1, len(pages), len(pages))
	switch m.state.Page {
	case dashboard.PageOverview:
		hints = "a/k/p/c expand card  esc close  " + hints
	case dashboard.PagePredict:
		hints = "r role  e experience  o location  enter predict  " + hints
	}
	if m.state.Mobile {
		hints = "s menu  " + hints
	}
	return m.styles.Muted.Render(hints)
}

func (m Model) renderPage() string {
	switch m.state.Page {
	case dashboard.PageOverview:
		return m.renderOverview()
	case dashboard.PageSkills:
		return m.renderSkills()
	case dashboard.PageSalary:
		return m.renderSalary()
	case dashboard.PageLocations:
		return m.renderLocations()
	case dashboard.PageRoles:
		return m.renderRoles()
	case dashboard.PagePredict:
		return m.renderPredictor()
	case dashboard.PageExplore:
		return m.renderExplorer()
	default:
		return m.renderAbout()
	}
}

func (m Model) title(s string) string {
	return m.styles.Header.Render(s) + "\n\n"
}

func (m Model) card(id dashboard.Card, label, value string) string {
	style := m.styles.Card
	if m.state.ActiveCard == id {
		style = m.styles.CardOpen
	}
	return style.Render(m.styles.Muted.Render(label) + "\n" + m.styles.Big.Render(value))
}

func (m Model) renderOverview() string {
	s := market.Summary()
	cards := []string{
		m.card(dashboard.CardPostings, "Total Job Postings", utils.FormatCount(s.TotalPostings)),
		m.card(dashboard.CardAvgSalary, "Average Salary", utils.FormatSalaryK(s.AvgSalary)),
		m.card(dashboard.CardSkills, "Skills Tracked", utils.FormatCount(s.SkillsTracked)),
		m.card(dashboard.CardCompanies, "Companies Hiring", utils.FormatCount(s.UniqueCompanies)),
	}

	var row string
	if m.state.Mobile {
		row = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		row = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	out := m.title("Market Overview") + row + "\n\n"
	if detail := m.renderCardDetail(); detail != "" {
		return out + detail
	}

	var sb strings.Builder
	sb.WriteString("Top locations\n")
	for _, l := range s.TopLocations {
		fmt.Fprintf(&sb, "  %-20s %s\n", l.Location, utils.FormatCount(l.Count))
	}
	sb.WriteString("Top roles\n")
	for _, r := range s.TopRoles {
		fmt.Fprintf(&sb, "  %-20s %s\n", r.Title, utils.FormatCount(r.Count))
	}
	return out + sb.String()
}

func (m Model) renderCardDetail() string {
	var sb strings.Builder
	switch m.state.ActiveCard {
	case dashboard.CardAvgSalary:
		sb.WriteString(m.styles.Accent.Render("Average salary by role") + "\n")
		for _, r := range market.AvgSalaryByRole() {
			fmt.Fprintf(&sb, "  %-22s %s\n", utils.TruncateString(r.Role, nameWidth), utils.FormatSalaryK(r.Salary))
		}
	case dashboard.CardSkills:
		tracked := market.Summary().SkillsTracked
		sb.WriteString(m.styles.Accent.Render(fmt.Sprintf("Skills tracked (%s)", utils.FormatCount(tracked))) + "\n")
		sb.WriteString(m.styles.Muted.Render("Sample of skills we track across job postings") + "\n")
		for _, line := range wrapNames(market.TrackedSkills(), trackedWidth) {
			sb.WriteString("  " + line + "\n")
		}
	case dashboard.CardPostings:
		sb.WriteString(m.styles.Accent.Render("Postings by month") + "\n")
		points := market.PostingsByMonth()
		peak := 0
		for _, p := range points {
			peak = max(peak, p.Postings)
		}
		for _, p := range points {
			fmt.Fprintf(&sb, "  %-4s %8s %s\n", p.Month, utils.FormatCount(p.Postings), m.styles.Bar.Render(utils.Bar(p.Postings, peak, barWidth)))
		}
	case dashboard.CardCompanies:
		sb.WriteString(m.styles.Accent.Render("Top hiring companies") + "\n")
		for _, c := range market.TopCompanies(5) {
			fmt.Fprintf(&sb, "  %2d. %-14s %s\n", c.Rank, c.Name, utils.FormatCount(c.Jobs))
		}
	default:
		return ""
	}
	return sb.String()
}

func (m Model) renderSkills() string {
	var sb strings.Builder
	sb.WriteString(m.title("Skills Intel"))
	for _, s := range market.TopSkills(m.topN) {
		fmt.Fprintf(&sb, "%-12s %3d%% %s %s\n",
			s.Skill, s.Demand, m.styles.Bar.Render(utils.Bar(s.Demand, 100, barWidth)), utils.FormatSalaryK(s.Salary))
	}
	return sb.String()
}

func (m Model) renderSalary() string {
	var sb strings.Builder
	sb.WriteString(m.title("Salary Insights"))
	for _, r := range market.AvgSalaryByRole() {
		fmt.Fprintf(&sb, "%-22s %s %s\n", utils.TruncateString(r.Role, nameWidth), m.styles.Bar.Render(utils.Bar(r.Salary, 160, barWidth)), utils.FormatSalaryK(r.Salary))
	}
	sb.WriteString("\nMonth  Analyst  Scientist  Engineer\n")
	for _, p := range market.SalaryTrend() {
		fmt.Fprintf(&sb, "%-6s %-8s %-10s %s\n", p.Month,
			utils.FormatSalaryK(p.Analyst), utils.FormatSalaryK(p.Scientist), utils.FormatSalaryK(p.Engineer))
	}
	return sb.String()
}

func (m Model) renderLocations() string {
	var sb strings.Builder
	sb.WriteString(m.title("Locations"))
	locations := market.LocationsByJobs()
	peak := 0
	for _, l := range locations {
		peak = max(peak, l.Jobs)
	}
	for _, l := range locations {
		fmt.Fprintf(&sb, "%-18s %7s %s %s\n", utils.TruncateString(l.City, 18), utils.FormatCount(l.Jobs),
			m.styles.Bar.Render(utils.Bar(l.Jobs, peak, barWidth)), utils.FormatSalaryK(l.AvgSalary))
	}
	return sb.String()
}

func (m Model) renderRoles() string {
	var sb strings.Builder
	sb.WriteString(m.title("Roles"))
	sb.WriteString("Share of postings\n")
	for _, j := range market.JobDistribution() {
		fmt.Fprintf(&sb, "  %-18s %3d%% %s\n", utils.TruncateString(j.Name, 18), j.Value, m.styles.Bar.Render(utils.Bar(j.Value, 100, barWidth)))
	}
	sb.WriteString("\nSkill emphasis (scientist / analyst)\n")
	for _, p := range market.SkillProfiles() {
		fmt.Fprintf(&sb, "  %-18s %3d / %d\n", p.Subject, p.Scientist, p.Analyst)
	}
	return sb.String()
}

func (m Model) renderPredictor() string {
	form := m.state.Form
	var sb strings.Builder
	sb.WriteString(m.title("ML Salary Predictor"))
	fmt.Fprintf(&sb, "Job Role    %s\n", m.styles.Accent.Render(form.Role))
	fmt.Fprintf(&sb, "Experience  %s\n", m.styles.Accent.Render(string(form.Experience)))
	fmt.Fprintf(&sb, "Location    %s\n\n", m.styles.Accent.Render(form.Location))

	switch m.state.Prediction.Status {
	case dashboard.StatusComputing:
		sb.WriteString(m.spinner.View() + " Computing...\n")
	case dashboard.StatusReady:
		est := m.state.Prediction.Result
		res := est.Result
		fmt.Fprintf(&sb, "Predicted Salary  %s\n", m.styles.Big.Render(utils.FormatSalaryK(res.Predicted)))
		fmt.Fprintf(&sb, "Range             %s\n", utils.FormatRange(res.LowerBound, res.UpperBound))
		fmt.Fprintf(&sb, "Confidence        %d%%\n", res.ConfidencePercent)
		if !est.RoleKnown || !est.LocationKnown {
			sb.WriteString(m.styles.Warn.Render("some selections were not recognized; defaults applied") + "\n")
		}
	default:
		sb.WriteString(m.styles.Muted.Render("press enter to predict") + "\n")
	}
	return sb.String()
}

func (m Model) renderExplorer() string {
	var sb strings.Builder
	sb.WriteString(m.title("Data Explorer"))
	sb.WriteString("Highest paying states\n")
	for _, s := range utils.Head(market.StatesBySalary(), m.topN) {
		fmt.Fprintf(&sb, "  %-16s avg %s  (%s - %s)  %s jobs\n", s.State,
			utils.FormatSalaryK(s.AvgSalary), utils.FormatSalaryK(s.MinSalary), utils.FormatSalaryK(s.MaxSalary), utils.FormatCount(s.Jobs))
	}
	fmt.Fprintf(&sb, "\n%d roles and %d locations in the predictor\n", len(estimator.Roles()), len(estimator.Locations()))
	return sb.String()
}

func (m Model) renderAbout() string {
	return m.title("About") +
		"TalentScope summarizes the data job market: postings, skills, salaries\n" +
		"and hiring locations, plus a salary predictor driven by role,\n" +
		"experience and location multipliers.\n\n" +
		m.styles.Muted.Render("Predictions are estimates with a fixed band of -$12K / +$18K.")
}

// wrapNames joins names with two spaces, breaking lines before width
func wrapNames(names []string, width int) []string {
	var lines []string
	var line string
	for _, n := range names {
		switch {
		case line == "":
			line = n
		case len(line)+2+len(n) > width:
			lines = append(lines, line)
			line = n
		default:
			line += "  " + n
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
