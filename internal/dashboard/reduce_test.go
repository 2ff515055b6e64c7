package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/talentscope/internal/estimator"
	"github.com/fr4nk3nst1ner/talentscope/internal/models"
)

func apply(s State, events ...Event) State {
	for _, e := range events {
		s = Reduce(s, e)
	}
	return s
}

func TestInitial(t *testing.T) {
	s := Initial()
	want := State{
		Page:       PageOverview,
		Form:       Form{Role: "Data Analyst", Experience: models.Mid, Location: "Remote"},
		Prediction: Prediction{Status: StatusIdle},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Initial() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, models.EstimateRequest{Role: "Data Analyst", Experience: "Mid", Location: "Remote"}, s.Request())
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   Page
	}{
		{"navigate", []Event{Navigate{Page: PageSkills}}, PageSkills},
		{"unknown page ignored", []Event{Navigate{Page: "nope"}}, PageOverview},
		{"next", []Event{NextPage{}, NextPage{}}, PageSalary},
		{"prev wraps", []Event{PrevPage{}}, PageAbout},
		{"next wraps", []Event{Navigate{Page: PageAbout}, NextPage{}}, PageOverview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(Initial(), tt.events...).Page)
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := Initial()
	snapshot := before
	_ = apply(before, Navigate{Page: PagePredict}, SelectRole{Role: "ML Engineer"}, ToggleSidebar{})
	if diff := cmp.Diff(snapshot, before); diff != "" {
		t.Errorf("input state changed (-want +got):\n%s", diff)
	}
}

func TestCards(t *testing.T) {
	s := apply(Initial(), OpenCard{Card: CardSkills})
	assert.Equal(t, CardSkills, s.ActiveCard)

	s = Reduce(s, OpenCard{Card: CardSkills})
	assert.Equal(t, CardNone, s.ActiveCard, "opening the same card toggles it")

	s = apply(s, OpenCard{Card: CardCompanies}, OpenCard{Card: CardAvgSalary})
	assert.Equal(t, CardAvgSalary, s.ActiveCard)

	s = Reduce(s, CloseCard{})
	assert.Equal(t, CardNone, s.ActiveCard)

	s = Reduce(s, OpenCard{Card: "bogus"})
	assert.Equal(t, CardNone, s.ActiveCard)

	s = apply(s, OpenCard{Card: CardPostings}, Navigate{Page: PageSkills})
	assert.Equal(t, CardNone, s.ActiveCard, "navigation closes cards")

	s = Reduce(s, OpenCard{Card: CardPostings})
	assert.Equal(t, CardNone, s.ActiveCard, "cards only open on the overview")
}

func TestSidebarAndResize(t *testing.T) {
	s := apply(Initial(), Resize{Mobile: true}, ToggleSidebar{})
	assert.True(t, s.SidebarOpen)

	s = Reduce(s, Navigate{Page: PageRoles})
	assert.False(t, s.SidebarOpen, "mobile navigation closes the sidebar")

	s = apply(s, ToggleSidebar{}, Resize{Mobile: false})
	assert.False(t, s.SidebarOpen, "leaving mobile closes the sidebar")
	assert.False(t, s.Mobile)

	s = apply(s, ToggleSidebar{}, Navigate{Page: PageSkills})
	assert.True(t, s.SidebarOpen, "desktop navigation keeps the sidebar")

	s = Reduce(s, Resize{Mobile: false})
	assert.True(t, s.SidebarOpen, "a desktop resize keeps the sidebar")
}

func TestPredictionLifecycle(t *testing.T) {
	est := estimator.Explain(models.EstimateRequest{Role: "Data Analyst", Experience: "Mid", Location: "Remote"})

	s := apply(Initial(), Navigate{Page: PagePredict}, PredictRequested{RequestID: 1})
	assert.True(t, s.Computing())

	s = Reduce(s, PredictCompleted{RequestID: 1, Estimate: est})
	require.Equal(t, StatusReady, s.Prediction.Status)
	require.NotNil(t, s.Prediction.Result)
	assert.Equal(t, 89, s.Prediction.Result.Result.Predicted)

	s = Reduce(s, SelectLocation{Location: "Seattle"})
	assert.Equal(t, StatusIdle, s.Prediction.Status)
	assert.Nil(t, s.Prediction.Result)
	assert.Equal(t, "Seattle", s.Form.Location)
}

func TestStaleCompletionIgnored(t *testing.T) {
	est := estimator.Explain(models.EstimateRequest{Role: "Data Analyst"})

	s := apply(Initial(), Navigate{Page: PagePredict}, PredictRequested{RequestID: 1}, PredictRequested{RequestID: 2})
	s = Reduce(s, PredictCompleted{RequestID: 1, Estimate: est})
	assert.True(t, s.Computing(), "completion for an old request is dropped")

	s = Reduce(s, PredictCancelled{RequestID: 1})
	assert.True(t, s.Computing(), "cancellation for an old request is dropped")

	s = Reduce(s, PredictCancelled{RequestID: 2})
	assert.Equal(t, StatusIdle, s.Prediction.Status)

	s = Reduce(s, PredictCompleted{RequestID: 2, Estimate: est})
	assert.Equal(t, StatusIdle, s.Prediction.Status, "completion after cancel is dropped")
}

func TestNavigatingAwayAbandonsPrediction(t *testing.T) {
	s := apply(Initial(), Navigate{Page: PagePredict}, PredictRequested{RequestID: 7}, Navigate{Page: PageAbout})
	assert.Equal(t, StatusIdle, s.Prediction.Status)

	s = Reduce(s, PredictCompleted{RequestID: 7, Estimate: models.Estimate{}})
	assert.Nil(t, s.Prediction.Result)
}

func TestFormAcceptsAnyValue(t *testing.T) {
	s := apply(Initial(),
		SelectRole{Role: "Chief Vibes Officer"},
		SelectExperience{Experience: "Principal"},
		SelectLocation{Location: ""},
	)
	want := Form{Role: "Chief Vibes Officer", Experience: "Principal", Location: ""}
	if diff := cmp.Diff(want, s.Form); diff != "" {
		t.Errorf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestPagesCopy(t *testing.T) {
	p := Pages()
	require.Len(t, p, 8)
	p[0].Label = "changed"
	assert.Equal(t, "Market Overview", Pages()[0].Label)
	assert.Equal(t, 5, Reduce(Initial(), Navigate{Page: PagePredict}).PageIndex())
}
