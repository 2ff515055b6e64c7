package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/fr4nk3nst1ner/talentscope/internal/estimator"
	"github.com/fr4nk3nst1ner/talentscope/internal/market"
	"github.com/fr4nk3nst1ner/talentscope/internal/models"
	"github.com/fr4nk3nst1ner/talentscope/internal/utils"
)

//go:embed templates/index.html
var templateFS embed.FS

// pageData is everything the overview page renders
type pageData struct {
	Summary   models.Summary
	Skills    []models.SkillDemand
	Companies []models.CompanyRank
	Roles     []models.RoleEntry
	Tiers     []models.TierEntry
	Locations []models.LocationEntry
	Form      models.EstimateRequest
	Estimate  *models.Estimate
}

func parsePage() (*template.Template, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"salaryK": utils.FormatSalaryK,
		"count":   utils.FormatCount,
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return tmpl, nil
}

// handleIndex renders the overview page. Any of role, experience or location
// in the query runs the predictor without the delay.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	topN := s.cfg.Display.TopN
	q := r.URL.Query()

	data := pageData{
		Summary:   market.Summary(),
		Skills:    market.TopSkills(topN),
		Companies: market.TopCompanies(topN),
		Roles:     estimator.Roles(),
		Tiers:     estimator.Tiers(),
		Locations: estimator.Locations(),
		Form:      queryRequest(q),
	}

	if hasEstimateInput(q) {
		est, err := s.instant.Predict(r.Context(), data.Form)
		if err != nil {
			s.errorResponse(w, r, err)
			return
		}
		data.Estimate = &est
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.errorResponse(w, r, fmt.Errorf("failed to render page: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
