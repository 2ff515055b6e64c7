package dashboard

import "github.com/fr4nk3nst1ner/talentscope/internal/models"

// Event is a user intent or an async outcome applied to State
type Event interface {
	isEvent()
}

// Navigate switches to a page
type Navigate struct{ Page Page }

// NextPage moves to the next sidebar entry, wrapping around
type NextPage struct{}

// PrevPage moves to the previous sidebar entry, wrapping around
type PrevPage struct{}

// OpenCard expands an overview card, or collapses it if already open
type OpenCard struct{ Card Card }

// CloseCard collapses the expanded card
type CloseCard struct{}

// ToggleSidebar opens or closes the sidebar
type ToggleSidebar struct{}

// Resize records whether the layout is mobile
type Resize struct{ Mobile bool }

// SelectRole sets the predictor role
type SelectRole struct{ Role string }

// SelectExperience sets the predictor experience tier
type SelectExperience struct{ Experience models.ExperienceTier }

// SelectLocation sets the predictor location
type SelectLocation struct{ Location string }

// PredictRequested marks a prediction as started
type PredictRequested struct{ RequestID uint64 }

// PredictCompleted delivers the result of a prediction
type PredictCompleted struct {
	RequestID uint64
	Estimate  models.Estimate
}

// PredictCancelled abandons a prediction
type PredictCancelled struct{ RequestID uint64 }

func (Navigate) isEvent()         {}
func (NextPage) isEvent()         {}
func (PrevPage) isEvent()         {}
func (OpenCard) isEvent()         {}
func (CloseCard) isEvent()        {}
func (ToggleSidebar) isEvent()    {}
func (Resize) isEvent()           {}
func (SelectRole) isEvent()       {}
func (SelectExperience) isEvent() {}
func (SelectLocation) isEvent()   {}
func (PredictRequested) isEvent() {}
func (PredictCompleted) isEvent() {}
func (PredictCancelled) isEvent() {}
