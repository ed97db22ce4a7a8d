package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/skippr/growscore/internal/scoring"
	"github.com/skippr/growscore/internal/types"
)

// PutSkillsRequest replaces the selected skill list.
type PutSkillsRequest struct {
	Skills []string `json:"skills" validate:"required,dive,min=1"`
}

func (s *Server) handlePutSkills(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req PutSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile.Skills = req.Skills
	if err := s.saveProfile(r, userID, name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills":       profile.Skills,
		"skills_score": scoring.SkillsScore(len(profile.Skills)),
	})
}

// PutBehaviorRequest carries Likert survey responses, one integer 1-5 per
// question.
type PutBehaviorRequest struct {
	Responses []int `json:"responses" validate:"required,min=1,dive,min=1,max=5"`
}

func (s *Server) handlePutBehavior(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req PutBehaviorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile.BehaviorScore = scoring.BehaviorScore(req.Responses)
	if err := s.saveProfile(r, userID, name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"behavior_score": profile.BehaviorScore,
	})
}

// PutReferencesRequest replaces the reference and backchannel lists.
type PutReferencesRequest struct {
	References  []types.Reference `json:"references"`
	Backchannel []types.Reference `json:"backchannel"`
}

func (s *Server) handlePutReferences(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req PutReferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	for i, ref := range req.References {
		if ref.Name == "" {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("reference %d: name is required", i))
			return
		}
	}

	profile.References = req.References
	profile.Backchannel = req.Backchannel
	if err := s.saveProfile(r, userID, name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// Reference content never affects the score; the sub-score stays the
	// placeholder constant.
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"references":      profile.References,
		"backchannel":     profile.Backchannel,
		"reference_score": scoring.DefaultReferenceScore,
	})
}

// PutEducationRequest replaces the education history.
type PutEducationRequest struct {
	Education []types.Education `json:"education"`
}

func (s *Server) handlePutEducation(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req PutEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	for i, edu := range req.Education {
		if edu.School == "" {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("education %d: school is required", i))
			return
		}
	}

	profile.Education = req.Education
	if err := s.saveProfile(r, userID, name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"education": profile.Education})
}

func (s *Server) handlePutHRCheck(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.HRCheck
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile.HRCheck = &req
	if err := s.saveProfile(r, userID, name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"hr_check": profile.HRCheck})
}
