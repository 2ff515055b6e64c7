// Package tui is the interactive terminal dashboard. All UI state lives in a
// dashboard.State value; the bubbletea model only translates keys and async
// results into dashboard events.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fr4nk3nst1ner/talentscope/internal/config"
	"github.com/fr4nk3nst1ner/talentscope/internal/dashboard"
	"github.com/fr4nk3nst1ner/talentscope/internal/estimator"
	"github.com/fr4nk3nst1ner/talentscope/internal/models"
	"github.com/fr4nk3nst1ner/talentscope/internal/predictor"
)

// MobileWidth is the terminal width below which the compact layout is used
const MobileWidth = 80

// predictionMsg carries the outcome of one prediction request
type predictionMsg struct {
	id  uint64
	est models.Estimate
	err error
}

// Model is the bubbletea model for the dashboard
type Model struct {
	state     dashboard.State
	predictor *predictor.Predictor
	spinner   spinner.Model
	styles    styles
	topN      int

	width  int
	height int

	nextID uint64
	cancel context.CancelFunc
}

// New creates the dashboard model
func New(cfg *config.AppConfig, p *predictor.Predictor) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	st := newStyles()
	sp.Style = st.Accent

	return Model{
		state:     dashboard.Initial(),
		predictor: p,
		spinner:   sp,
		styles:    st,
		topN:      cfg.Display.TopN,
		width:     MobileWidth,
	}
}

// State returns the current dashboard state
func (m Model) State() dashboard.State {
	return m.state
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.dispatch(dashboard.Resize{Mobile: msg.Width < MobileWidth})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case predictionMsg:
		if msg.err != nil {
			m = m.dispatch(dashboard.PredictCancelled{RequestID: msg.id})
		} else {
			m = m.dispatch(dashboard.PredictCompleted{RequestID: msg.id, Estimate: msg.est})
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Computing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		m.stopPrediction()
		return m, tea.Quit
	case "tab", "right", "l":
		return m.dispatch(dashboard.NextPage{}), nil
	case "shift+tab", "left", "h":
		return m.dispatch(dashboard.PrevPage{}), nil
	case "1", "2", "3", "4", "5", "6", "7", "8":
		pages := dashboard.Pages()
		return m.dispatch(dashboard.Navigate{Page: pages[key[0]-'1'].ID}), nil
	case "s":
		return m.dispatch(dashboard.ToggleSidebar{}), nil
	case "esc":
		return m.dispatch(dashboard.CloseCard{}), nil
	}

	switch m.state.Page {
	case dashboard.PageOverview:
		if card, ok := cardKeys[key]; ok {
			return m.dispatch(dashboard.OpenCard{Card: card}), nil
		}
	case dashboard.PagePredict:
		form := m.state.Form
		switch key {
		case "r":
			return m.dispatch(dashboard.SelectRole{Role: nextRole(form.Role)}), nil
		case "e":
			return m.dispatch(dashboard.SelectExperience{Experience: nextTier(form.Experience)}), nil
		case "o":
			return m.dispatch(dashboard.SelectLocation{Location: nextLocation(form.Location)}), nil
		case "enter":
			return m.startPrediction()
		}
	}

	return m, nil
}

var cardKeys = map[string]dashboard.Card{
	"a": dashboard.CardAvgSalary,
	"k": dashboard.CardSkills,
	"p": dashboard.CardPostings,
	"c": dashboard.CardCompanies,
}

// dispatch reduces an event and cancels the running prediction if the
// state no longer waits for it
func (m Model) dispatch(e dashboard.Event) Model {
	m.state = dashboard.Reduce(m.state, e)
	if !m.state.Computing() {
		m.stopPrediction()
	}
	return m
}

func (m *Model) stopPrediction() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// startPrediction supersedes any running prediction with a new request
func (m Model) startPrediction() (tea.Model, tea.Cmd) {
	m.stopPrediction()

	m.nextID++
	id := m.nextID
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.state = dashboard.Reduce(m.state, dashboard.PredictRequested{RequestID: id})

	p := m.predictor
	req := m.state.Request()
	predict := func() tea.Msg {
		est, err := p.Predict(ctx, req)
		return predictionMsg{id: id, est: est, err: err}
	}
	return m, tea.Batch(predict, m.spinner.Tick)
}

func nextRole(current string) string {
	roles := estimator.Roles()
	for i, r := range roles {
		if r.Label == current {
			return roles[(i+1)%len(roles)].Label
		}
	}
	return roles[0].Label
}

func nextTier(current models.ExperienceTier) models.ExperienceTier {
	tiers := estimator.Tiers()
	for i, t := range tiers {
		if t.Tier == current {
			return tiers[(i+1)%len(tiers)].Tier
		}
	}
	return tiers[0].Tier
}

func nextLocation(current string) string {
	locations := estimator.Locations()
	for i, l := range locations {
		if l.Label == current {
			return locations[(i+1)%len(locations)].Label
		}
	}
	return locations[0].Label
}

// Run starts the dashboard on the terminal and blocks until it exits
func Run(ctx context.Context, cfg *config.AppConfig, p *predictor.Predictor) error {
	prog := tea.NewProgram(New(cfg, p), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := prog.Run()
	if m, ok := final.(Model); ok {
		m.stopPrediction()
	}
	return err
}
