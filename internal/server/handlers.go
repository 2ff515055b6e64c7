package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/talentscope/internal/estimator"
	"github.com/fr4nk3nst1ner/talentscope/internal/market"
	"github.com/fr4nk3nst1ner/talentscope/internal/models"
	"github.com/fr4nk3nst1ner/talentscope/internal/utils"
)

const maxBodyBytes = 1 << 16

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "service": "talentscope"})
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, market.Summary())
}

// handleEstimateQuery serves GET /api/estimate?role=&experience=&location=&delay=
func (s *Server) handleEstimateQuery(w http.ResponseWriter, r *http.Request) {
	s.estimate(w, r, queryRequest(r.URL.Query()))
}

// handleEstimateBody serves POST /api/estimate with a JSON EstimateRequest.
// Omitted fields take the defaults; fields sent as "" are kept.
func (s *Server) handleEstimateBody(w http.ResponseWriter, r *http.Request) {
	req := defaultRequest()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, r, badRequest("invalid request body: %v", err))
		return
	}
	s.estimate(w, r, req)
}

// estimate never rejects unknown labels; only the delay can fail, when the
// client goes away before it elapses
func (s *Server) estimate(w http.ResponseWriter, r *http.Request, req models.EstimateRequest) {
	delay, err := parseBool(r.URL.Query().Get("delay"))
	if err != nil {
		s.errorResponse(w, r, badRequest("invalid delay: %q", r.URL.Query().Get("delay")))
		return
	}

	p := s.instant
	if delay {
		p = s.delayed
	}
	est, err := p.Predict(r.Context(), req)
	if err != nil {
		s.logger.Debug("prediction abandoned",
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err))
		s.errorResponse(w, r, &apiError{Status: http.StatusServiceUnavailable, Message: "prediction cancelled"})
		return
	}
	s.jsonResponse(w, http.StatusOK, est)
}

func defaultRequest() models.EstimateRequest {
	return models.EstimateRequest{
		Role:       estimator.DefaultRole,
		Experience: string(estimator.DefaultExperience),
		Location:   estimator.DefaultLocation,
	}
}

// queryRequest reads the estimate inputs from q. Absent keys take the
// defaults; a key present with an empty value reaches the estimator as is.
func queryRequest(q url.Values) models.EstimateRequest {
	req := defaultRequest()
	if q.Has("role") {
		req.Role = q.Get("role")
	}
	if q.Has("experience") {
		req.Experience = q.Get("experience")
	}
	if q.Has("location") {
		req.Location = q.Get("location")
	}
	return req
}

// hasEstimateInput reports whether q carries any estimate input
func hasEstimateInput(q url.Values) bool {
	return q.Has("role") || q.Has("experience") || q.Has("location")
}

func (s *Server) handleRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, estimator.Roles())
}

func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, estimator.Locations())
}

func (s *Server) handleTiers(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, estimator.Tiers())
}

func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	top, ok, err := parseTop(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if ok {
		s.jsonResponse(w, http.StatusOK, market.TopSkills(top))
		return
	}
	s.jsonResponse(w, http.StatusOK, market.Skills())
}

func (s *Server) handleSkill(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	detail, ok := market.SkillInfo(name)
	if !ok {
		s.errorResponse(w, r, notFound("unknown skill: %s", name))
		return
	}
	s.jsonResponse(w, http.StatusOK, detail)
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	top, ok, err := parseTop(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if ok {
		s.jsonResponse(w, http.StatusOK, market.TopCompanies(top))
		return
	}
	s.jsonResponse(w, http.StatusOK, market.Companies())
}

func (s *Server) handleLocationStats(w http.ResponseWriter, r *http.Request) {
	sortKey := strings.ToLower(r.URL.Query().Get("sort"))
	if !utils.IsValidLocationSort(sortKey) {
		s.errorResponse(w, r, badRequest("invalid sort %q: must be jobs or salary", sortKey))
		return
	}

	switch sortKey {
	case "jobs":
		s.jsonResponse(w, http.StatusOK, market.LocationsByJobs())
	case "salary":
		s.jsonResponse(w, http.StatusOK, market.LocationsBySalary())
	default:
		s.jsonResponse(w, http.StatusOK, market.Locations())
	}
}

func (s *Server) handleStates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, market.States())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	st, ok := market.State(name)
	if !ok {
		s.errorResponse(w, r, notFound("unknown state: %s", name))
		return
	}
	s.jsonResponse(w, http.StatusOK, st)
}

func (s *Server) handleTrends(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, market.Trends())
}

// parseTop reads ?top=n. ok is false when the parameter is absent.
func parseTop(r *http.Request) (n int, ok bool, err error) {
	raw := r.URL.Query().Get("top")
	if raw == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false, badRequest("invalid top: %q", raw)
	}
	return n, true, nil
}

func parseBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
