package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skippr/growscore/internal/types"
)

func TestHandleRankings_OrdersBestFirst(t *testing.T) {
	s, _ := newTestServer()

	body := `{
		"weights": {"jd_match": 25, "references": 25, "behavior": 25, "skills": 25},
		"candidates": [
			{"name": "low", "sub_scores": {"jd_match": 40, "references": 90, "behavior": 50, "skills": 20}},
			{"name": "high", "sub_scores": {"jd_match": 90, "references": 90, "behavior": 80, "skills": 60}}
		]
	}`
	req := httptest.NewRequest("POST", "/rankings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleRankings(rec, req, uuid.New())

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Ranked []types.RankedCandidate `json:"ranked"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Ranked, 2)
	assert.Equal(t, "high", resp.Ranked[0].Name)
	assert.Equal(t, 80.0, resp.Ranked[0].Score)
	assert.Equal(t, "low", resp.Ranked[1].Name)
	assert.Equal(t, 50.0, resp.Ranked[1].Score)
}

func TestHandleRankings_ScaleInvariantWeights(t *testing.T) {
	s, _ := newTestServer()

	run := func(weights string) float64 {
		body := `{
			"weights": ` + weights + `,
			"candidates": [{"name": "c", "sub_scores": {"jd_match": 80, "references": 90, "behavior": 60, "skills": 25}}]
		}`
		req := httptest.NewRequest("POST", "/rankings", strings.NewReader(body))
		rec := httptest.NewRecorder()
		s.handleRankings(rec, req, uuid.New())
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Ranked []types.RankedCandidate `json:"ranked"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Ranked, 1)
		return resp.Ranked[0].Score
	}

	small := run(`{"jd_match": 1, "references": 1, "behavior": 1, "skills": 1}`)
	large := run(`{"jd_match": 100, "references": 100, "behavior": 100, "skills": 100}`)
	assert.Equal(t, small, large)
}

func TestHandleRankings_ZeroWeights(t *testing.T) {
	s, _ := newTestServer()

	body := `{
		"weights": {"jd_match": 0, "references": 0, "behavior": 0, "skills": 0},
		"candidates": [{"name": "c", "sub_scores": {"jd_match": 80, "references": 90, "behavior": 60, "skills": 25}}]
	}`
	req := httptest.NewRequest("POST", "/rankings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleRankings(rec, req, uuid.New())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleRankings_NoCandidates(t *testing.T) {
	s, _ := newTestServer()

	body := `{"weights": {"jd_match": 25, "references": 25, "behavior": 25, "skills": 25}, "candidates": []}`
	req := httptest.NewRequest("POST", "/rankings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleRankings(rec, req, uuid.New())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
