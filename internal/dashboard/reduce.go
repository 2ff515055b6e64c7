package dashboard

// Reduce applies an event and returns the next state. It never mutates s
// and ignores events that do not apply to the current state.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case Navigate:
		if pageIndex(ev.Page) < 0 {
			return s
		}
		return navigate(s, ev.Page)
	case NextPage:
		i := (pageIndex(s.Page) + 1) % len(pages)
		return navigate(s, pages[i].ID)
	case PrevPage:
		i := pageIndex(s.Page) - 1
		if i < 0 {
			i = len(pages) - 1
		}
		return navigate(s, pages[i].ID)
	case OpenCard:
		if s.Page != PageOverview || !validCard(ev.Card) {
			return s
		}
		if s.ActiveCard == ev.Card {
			s.ActiveCard = CardNone
		} else {
			s.ActiveCard = ev.Card
		}
	case CloseCard:
		s.ActiveCard = CardNone
	case ToggleSidebar:
		s.SidebarOpen = !s.SidebarOpen
	case Resize:
		if s.Mobile && !ev.Mobile {
			s.SidebarOpen = false
		}
		s.Mobile = ev.Mobile
	case SelectRole:
		s.Form.Role = ev.Role
		s = clearResult(s)
	case SelectExperience:
		s.Form.Experience = ev.Experience
		s = clearResult(s)
	case SelectLocation:
		s.Form.Location = ev.Location
		s = clearResult(s)
	case PredictRequested:
		s.Prediction = Prediction{Status: StatusComputing, RequestID: ev.RequestID}
	case PredictCompleted:
		if !s.Computing() || s.Prediction.RequestID != ev.RequestID {
			return s
		}
		est := ev.Estimate
		s.Prediction = Prediction{Status: StatusReady, RequestID: ev.RequestID, Result: &est}
	case PredictCancelled:
		if !s.Computing() || s.Prediction.RequestID != ev.RequestID {
			return s
		}
		s.Prediction = Prediction{Status: StatusIdle, RequestID: ev.RequestID}
	}
	return s
}

func navigate(s State, p Page) State {
	if s.Computing() && p != PagePredict {
		s.Prediction = Prediction{Status: StatusIdle, RequestID: s.Prediction.RequestID}
	}
	s.Page = p
	s.ActiveCard = CardNone
	if s.Mobile {
		s.SidebarOpen = false
	}
	return s
}

// clearResult drops a finished result once the form changes. An in-flight
// prediction keeps running for the selections it was started with.
func clearResult(s State) State {
	if s.Prediction.Status == StatusReady {
		s.Prediction = Prediction{Status: StatusIdle, RequestID: s.Prediction.RequestID}
	}
	return s
}
