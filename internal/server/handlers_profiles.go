package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/skippr/growscore/internal/types"
	"github.com/skippr/growscore/internal/wizard"
)

// loadProfile fetches and decodes a named profile for a user.
func (s *Server) loadProfile(r *http.Request, userID uuid.UUID, name string) (*types.CandidateProfile, error) {
	row, err := s.store.GetProfile(r.Context(), userID, name)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &ErrProfileNotFound{Name: name}
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(row.Data, &profile); err != nil {
		return nil, err
	}
	if profile.WizardStep == "" {
		profile.WizardStep = wizard.First()
	}
	return &profile, nil
}

// saveProfile encodes and upserts a profile.
func (s *Server) saveProfile(r *http.Request, userID uuid.UUID, name string, profile *types.CandidateProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	_, err = s.store.UpsertProfile(r.Context(), userID, name, data)
	return err
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	summaries, err := s.store.ListProfiles(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"profiles": summaries})
}

// CreateProfileRequest names a new candidate profile.
type CreateProfileRequest struct {
	Name string `json:"name" validate:"required,min=1,max=128"`
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	existing, err := s.store.GetProfile(r.Context(), userID, req.Name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing != nil {
		s.errorResponse(w, http.StatusConflict, "Profile already exists: "+req.Name)
		return
	}

	profile := &types.CandidateProfile{WizardStep: wizard.First()}
	if err := s.saveProfile(r, userID, req.Name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"name":    req.Name,
		"profile": profile,
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")

	var profile types.CandidateProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if profile.WizardStep != "" && !wizard.Valid(profile.WizardStep) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown wizard step: "+string(profile.WizardStep))
		return
	}
	if profile.WizardStep == "" {
		profile.WizardStep = wizard.First()
	}

	if err := s.saveProfile(r, userID, name, &profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, &profile)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")

	row, err := s.store.GetProfile(r.Context(), userID, name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if row == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found: "+name)
		return
	}

	if err := s.store.DeleteProfile(r.Context(), userID, name); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"deleted": name})
}
