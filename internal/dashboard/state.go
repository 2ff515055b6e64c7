// Package dashboard holds the dashboard UI state as one immutable value and
// the pure reducer that moves it from one state to the next.
package dashboard

import (
	"github.com/fr4nk3nst1ner/talentscope/internal/estimator"
	"github.com/fr4nk3nst1ner/talentscope/internal/models"
)

// Page identifies a dashboard page
type Page string

const (
	PageOverview  Page = "overview"
	PageSkills    Page = "skills"
	PageSalary    Page = "salary"
	PageLocations Page = "locations"
	PageRoles     Page = "roles"
	PagePredict   Page = "predict"
	PageExplore   Page = "explore"
	PageAbout     Page = "about"
)

// PageInfo is a sidebar entry
type PageInfo struct {
	ID    Page
	Label string
}

var pages = []PageInfo{
	{ID: PageOverview, Label: "Market Overview"},
	{ID: PageSkills, Label: "Skills Intel"},
	{ID: PageSalary, Label: "Salary Insights"},
	{ID: PageLocations, Label: "Locations"},
	{ID: PageRoles, Label: "Roles"},
	{ID: PagePredict, Label: "ML Predictor"},
	{ID: PageExplore, Label: "Data Explorer"},
	{ID: PageAbout, Label: "About"},
}

// Pages returns the sidebar entries in order
func Pages() []PageInfo {
	out := make([]PageInfo, len(pages))
	copy(out, pages)
	return out
}

// Card identifies an expandable overview card
type Card string

const (
	CardNone      Card = ""
	CardAvgSalary Card = "avg"
	CardSkills    Card = "skills"
	CardPostings  Card = "postings"
	CardCompanies Card = "companies"
)

func validCard(c Card) bool {
	switch c {
	case CardAvgSalary, CardSkills, CardPostings, CardCompanies:
		return true
	}
	return false
}

// Status is the lifecycle of a prediction
type Status string

const (
	StatusIdle      Status = "idle"
	StatusComputing Status = "computing"
	StatusReady     Status = "ready"
)

// Form holds the predictor selections
type Form struct {
	Role       string
	Experience models.ExperienceTier
	Location   string
}

// Prediction tracks the current prediction request
type Prediction struct {
	Status    Status
	RequestID uint64
	Result    *models.Estimate
}

// State is the whole dashboard UI state
type State struct {
	Page        Page
	ActiveCard  Card
	SidebarOpen bool
	Mobile      bool
	Form        Form
	Prediction  Prediction
}

// Initial returns the state the dashboard starts in
func Initial() State {
	return State{
		Page: PageOverview,
		Form: Form{
			Role:       estimator.DefaultRole,
			Experience: estimator.DefaultExperience,
			Location:   estimator.DefaultLocation,
		},
		Prediction: Prediction{Status: StatusIdle},
	}
}

// Computing reports whether a prediction is in flight
func (s State) Computing() bool {
	return s.Prediction.Status == StatusComputing
}

// Request returns the estimate request for the current form
func (s State) Request() models.EstimateRequest {
	return models.EstimateRequest{
		Role:       s.Form.Role,
		Experience: string(s.Form.Experience),
		Location:   s.Form.Location,
	}
}

// PageIndex returns the sidebar position of the current page
func (s State) PageIndex() int {
	return pageIndex(s.Page)
}

func pageIndex(p Page) int {
	for i, info := range pages {
		if info.ID == p {
			return i
		}
	}
	return -1
}
