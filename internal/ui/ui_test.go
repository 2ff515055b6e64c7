package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/talentscope/internal/estimator"
	"github.com/fr4nk3nst1ner/talentscope/internal/market"
	"github.com/fr4nk3nst1ner/talentscope/internal/models"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func TestColorizeSalary(t *testing.T) {
	assert.Equal(t, "$89K", ColorizeSalary(89))
	assert.Equal(t, "$246K", ColorizeSalary(246))
}

func TestColorizeText(t *testing.T) {
	assert.Equal(t, "", ColorizeText(""))
	assert.Equal(t, 2, strings.Count(ColorizeText("a b\nc\nd"), "\n"))
}

func TestRenderEstimate(t *testing.T) {
	var buf bytes.Buffer
	est := estimator.Explain(models.EstimateRequest{Role: "Data Analyst", Experience: "Mid", Location: "Remote"})
	require.NoError(t, RenderEstimate(&buf, est))

	out := buf.String()
	assert.Contains(t, out, "$89K")
	assert.Contains(t, out, "$77K ~ $107K")
	assert.Contains(t, out, "($77,000 to $107,000)")
	assert.Contains(t, out, "87%")
	assert.Contains(t, out, "x1.05")
	assert.NotContains(t, out, "note:")
}

func TestRenderEstimateFallbacks(t *testing.T) {
	var buf bytes.Buffer
	est := estimator.Explain(models.EstimateRequest{Role: "Nonexistent Role", Experience: "Principal", Location: "Nowhere"})
	require.NoError(t, RenderEstimate(&buf, est))

	out := buf.String()
	assert.Contains(t, out, "$95K")
	assert.Contains(t, out, `unknown role "Nonexistent Role"`)
	assert.Contains(t, out, `unknown experience "Principal"`)
	assert.Contains(t, out, `unknown location "Nowhere"`)
}

func TestRenderTables(t *testing.T) {
	tests := []struct {
		name   string
		render func(io.Writer) error
		want   []string
	}{
		{"summary", func(w io.Writer) error { return RenderSummary(w, market.Summary()) }, []string{"1,300,000", "New York, NY", "Data Analyst"}},
		{"skills", func(w io.Writer) error { return RenderSkills(w, market.TopSkills(3)) }, []string{"SQL", "Skill", "%"}},
		{"companies", func(w io.Writer) error { return RenderCompanies(w, market.TopCompanies(2)) }, []string{"Company", "Open Positions"}},
		{"locations", func(w io.Writer) error { return RenderLocations(w, market.LocationsByJobs()) }, []string{"City", "█"}},
		{"states", func(w io.Writer) error { return RenderStates(w, market.StatesBySalary()) }, []string{"California", "Puerto Rico"}},
		{"roles", func(w io.Writer) error { return RenderRoles(w, estimator.Roles()) }, []string{"ML Engineer", "$140K"}},
		{"trends", func(w io.Writer) error { return RenderTrends(w, market.Trends()) }, []string{"Month", "Postings"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.render(&buf))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestComputingWithoutDelay(t *testing.T) {
	var buf bytes.Buffer
	called := false
	err := Computing(context.Background(), &buf, 0, func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, buf.String())
}

func TestComputingReturnsFnError(t *testing.T) {
	boom := errors.New("boom")
	err := Computing(context.Background(), io.Discard, 50*time.Millisecond, func(context.Context) error {
		time.Sleep(20 * time.Millisecond)
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestComputingPassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Computing(ctx, io.Discard, time.Second, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}
