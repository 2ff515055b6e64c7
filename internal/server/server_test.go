package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap/zaptest"

	"github.com/fr4nk3nst1ner/talentscope/internal/config"
	"github.com/fr4nk3nst1ner/talentscope/internal/metrics"
	"github.com/fr4nk3nst1ner/talentscope/internal/models"
)

const estimateSchema = `{
	"type": "object",
	"required": ["request", "result", "base_compensation", "experience_multiplier", "location_multiplier", "role_known", "location_known"],
	"properties": {
		"request": {
			"type": "object",
			"required": ["role", "experience", "location"],
			"properties": {
				"role": {"type": "string"},
				"experience": {"type": "string"},
				"location": {"type": "string"}
			}
		},
		"result": {
			"type": "object",
			"required": ["predicted", "lower_bound", "upper_bound", "confidence_percent"],
			"properties": {
				"predicted": {"type": "integer"},
				"lower_bound": {"type": "integer"},
				"upper_bound": {"type": "integer"},
				"confidence_percent": {"type": "integer", "enum": [87]}
			}
		},
		"base_compensation": {"type": "integer"},
		"experience_multiplier": {"type": "number"},
		"location_multiplier": {"type": "number"},
		"role_known": {"type": "boolean"},
		"location_known": {"type": "boolean"}
	}
}`

func testConfig() *config.AppConfig {
	cfg := config.Default()
	cfg.Predictor.Delay = 0
	return cfg
}

func newTestServer(t *testing.T, cfg *config.AppConfig) (*Server, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	s, err := New(cfg, zaptest.NewLogger(t), m)
	require.NoError(t, err)
	return s, m
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	rec := do(t, s.Handler(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"talentscope"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestEstimateGet(t *testing.T) {
	s, m := newTestServer(t, testConfig())
	rec := do(t, s.Handler(), http.MethodGet, "/api/estimate?role=ML+Engineer&experience=Senior&location=San+Francisco", "")
	require.Equal(t, http.StatusOK, rec.Code)

	est := decode[models.Estimate](t, rec)
	assert.Equal(t, models.EstimateResult{Predicted: 246, LowerBound: 234, UpperBound: 264, ConfidencePercent: 87}, est.Result)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EstimatesTotal.WithLabelValues("true", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "GET /api/estimate", "200")))
}

func TestEstimateDefaults(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	rec := do(t, s.Handler(), http.MethodGet, "/api/estimate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	est := decode[models.Estimate](t, rec)
	assert.Equal(t, models.EstimateRequest{Role: "Data Analyst", Experience: "Mid", Location: "Remote"}, est.Request)
	assert.Equal(t, 89, est.Result.Predicted)
}

func TestEstimateKeepsExplicitEmptyLabels(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	rec := do(t, s.Handler(), http.MethodPost, "/api/estimate", `{"role":"","experience":"Mid","location":""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	est := decode[models.Estimate](t, rec)
	assert.Equal(t, models.EstimateRequest{Role: "", Experience: "Mid", Location: ""}, est.Request)
	assert.Equal(t, 95, est.Result.Predicted)
	assert.False(t, est.RoleKnown)
	assert.False(t, est.LocationKnown)

	rec = do(t, s.Handler(), http.MethodGet, "/api/estimate?role=Data+Analyst&location=", "")
	require.Equal(t, http.StatusOK, rec.Code)
	est = decode[models.Estimate](t, rec)
	assert.Equal(t, 85, est.Result.Predicted)
	assert.False(t, est.LocationKnown)
}

func TestEstimateOmittedFieldsUseDefaults(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	rec := do(t, s.Handler(), http.MethodPost, "/api/estimate", `{"experience":"Senior"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	est := decode[models.Estimate](t, rec)
	assert.Equal(t, models.EstimateRequest{Role: "Data Analyst", Experience: "Senior", Location: "Remote"}, est.Request)
	assert.True(t, est.RoleKnown)
	assert.True(t, est.LocationKnown)
}

func TestEstimateUnknownLabelsNeverFail(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	rec := do(t, s.Handler(), http.MethodPost, "/api/estimate",
		`{"role":"Nonexistent Role","experience":"Principal","location":"Nowhere"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	est := decode[models.Estimate](t, rec)
	assert.Equal(t, 95, est.Result.Predicted)
	assert.False(t, est.RoleKnown)
	assert.False(t, est.ExperienceKnown)
	assert.False(t, est.LocationKnown)
}

func TestEstimateMatchesSchema(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	rec := do(t, s.Handler(), http.MethodPost, "/api/estimate", `{"role":"Data Scientist","experience":"Junior","location":"Boston"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(estimateSchema),
		gojsonschema.NewBytesLoader(rec.Body.Bytes()),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "%v", result.Errors())
}

func TestEstimateBadRequests(t *testing.T) {
	s, _ := newTestServer(t, testConfig())

	rec := do(t, s.Handler(), http.MethodPost, "/api/estimate", `{"role":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "invalid request body")

	rec = do(t, s.Handler(), http.MethodGet, "/api/estimate?delay=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstimateDelayHonorsClientCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Predictor.Delay = 5 * time.Second
	s, _ := newTestServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/estimate?delay=true", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Handler().ServeHTTP(rec, req)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after the client went away")
	}
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMarketEndpoints(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	h := s.Handler()

	summary := decode[models.Summary](t, do(t, h, http.MethodGet, "/api/summary", ""))
	assert.Equal(t, 1300000, summary.TotalPostings)
	assert.Equal(t, 118, summary.AvgSalary)

	roles := decode[[]models.RoleEntry](t, do(t, h, http.MethodGet, "/api/roles", ""))
	assert.Len(t, roles, 24)
	locations := decode[[]models.LocationEntry](t, do(t, h, http.MethodGet, "/api/locations", ""))
	assert.Len(t, locations, 14)
	tiers := decode[[]models.TierEntry](t, do(t, h, http.MethodGet, "/api/tiers", ""))
	assert.Len(t, tiers, 3)

	skills := decode[[]models.SkillDemand](t, do(t, h, http.MethodGet, "/api/skills?top=3", ""))
	require.Len(t, skills, 3)
	assert.Equal(t, "Python", skills[0].Skill)

	skill := decode[models.SkillDetail](t, do(t, h, http.MethodGet, "/api/skills/sql", ""))
	assert.Equal(t, "SQL", skill.Skill)
	assert.NotEmpty(t, skill.Description)

	companies := decode[[]models.CompanyRank](t, do(t, h, http.MethodGet, "/api/companies?top=5", ""))
	assert.Len(t, companies, 5)

	bySalary := decode[[]models.LocationStat](t, do(t, h, http.MethodGet, "/api/locations/stats?sort=salary", ""))
	for i := 1; i < len(bySalary); i++ {
		assert.GreaterOrEqual(t, bySalary[i-1].AvgSalary, bySalary[i].AvgSalary)
	}

	states := decode[[]models.StateStat](t, do(t, h, http.MethodGet, "/api/states", ""))
	assert.Len(t, states, 52)
	state := decode[models.StateStat](t, do(t, h, http.MethodGet, "/api/states/california", ""))
	assert.Equal(t, "California", state.State)

	trends := decode[models.Trends](t, do(t, h, http.MethodGet, "/api/trends", ""))
	assert.NotEmpty(t, trends.SalaryTrend)
}

func TestMarketErrors(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	h := s.Handler()

	tests := []struct {
		target string
		status int
	}{
		{"/api/skills/cobol", http.StatusNotFound},
		{"/api/states/Atlantis", http.StatusNotFound},
		{"/api/skills?top=zero", http.StatusBadRequest},
		{"/api/companies?top=-1", http.StatusBadRequest},
		{"/api/locations/stats?sort=vibes", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.NotEmpty(t, decode[map[string]string](t, rec)["error"])
		})
	}
}

func TestBasicAuth(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Username = "admin"
	cfg.Auth.Password = "secret"
	s, _ := newTestServer(t, cfg)
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/api/summary", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	req.SetBasicAuth("admin", "wrong")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	req.SetBasicAuth("admin", "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// public routes stay open
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/", "").Code)
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	rec := do(t, s.Handler(), http.MethodOptions, "/api/estimate", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIndexPage(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	rec := do(t, s.Handler(), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, "1,300,000", doc.Find("#card-postings .value").Text())
	assert.Equal(t, "$118K", doc.Find("#card-avg .value").Text())
	assert.Equal(t, 10, doc.Find("#top-skills tr.skill").Length())
	assert.Equal(t, 24, doc.Find("#role option").Length())
	assert.Equal(t, "Data Analyst", doc.Find("#role option[selected]").Text())
	assert.Equal(t, 0, doc.Find(".prediction").Length())
}

func TestIndexPagePrediction(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	rec := do(t, s.Handler(), http.MethodGet, "/?role=ML+Engineer&experience=Senior&location=San+Francisco", "")
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, "$246K", doc.Find(".prediction .predicted").Text())
	assert.Contains(t, doc.Find(".prediction .range").Text(), "$234K ~ $264K")
	assert.Equal(t, "Senior", doc.Find("#experience option[selected]").Text())
	assert.Equal(t, "San Francisco", doc.Find("#location option[selected]").Text())
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	assert.Equal(t, http.StatusNotFound, do(t, s.Handler(), http.MethodGet, "/nope", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, s.Handler(), http.MethodDelete, "/api/estimate", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	do(t, s.Handler(), http.MethodGet, "/api/estimate", "")

	rec := do(t, s.Handler(), http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "talentscope_estimates_total")
	assert.Contains(t, rec.Body.String(), "talentscope_http_requests_total")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s, _ := newTestServer(t, testConfig())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
