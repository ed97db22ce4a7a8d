package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/google/uuid"

	"github.com/skippr/growscore/internal/scoring"
	"github.com/skippr/growscore/internal/types"
)

// handleRankings computes weighted composites for a batch of candidates and
// returns them ordered best-first. All-zero weights are rejected with 422
// rather than producing an arbitrary order.
func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request, _ uuid.UUID) {
	var req types.RankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	ranked := make([]types.RankedCandidate, len(req.Candidates))
	for i, candidate := range req.Candidates {
		score, err := scoring.WeightedComposite(candidate.SubScores, req.Weights)
		if err != nil {
			if errors.Is(err, scoring.ErrZeroWeights) {
				s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		ranked[i] = types.RankedCandidate{
			Name:      candidate.Name,
			SubScores: candidate.SubScores,
			Score:     score,
		}
	}

	// Stable so equal scores keep submission order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	s.jsonResponse(w, http.StatusOK, map[string]any{"ranked": ranked})
}
