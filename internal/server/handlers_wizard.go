package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/skippr/growscore/internal/wizard"
)

// wizardState is the wizard position payload returned by navigation handlers.
type wizardState struct {
	Step     wizard.Step `json:"step"`
	Index    int         `json:"index"`
	Count    int         `json:"count"`
	Terminal bool        `json:"terminal"`
}

func stateFor(step wizard.Step) wizardState {
	return wizardState{
		Step:     step,
		Index:    wizard.Index(step),
		Count:    wizard.Count(),
		Terminal: wizard.Terminal(step),
	}
}

func (s *Server) handleGetWizard(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stateFor(profile.WizardStep))
}

func (s *Server) handleWizardAdvance(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	s.moveWizard(w, r, userID, wizard.Advance)
}

func (s *Server) handleWizardBack(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	s.moveWizard(w, r, userID, wizard.Back)
}

// moveWizard applies a wizard transition and persists the new position.
// Transitions the state machine rejects return 422 without modifying the
// stored profile.
func (s *Server) moveWizard(w http.ResponseWriter, r *http.Request, userID uuid.UUID, move func(wizard.Step) (wizard.Step, error)) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	next, err := move(profile.WizardStep)
	if err != nil {
		var invalid *wizard.ErrInvalidTransition
		if errors.As(err, &invalid) {
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	profile.WizardStep = next
	if err := s.saveProfile(r, userID, name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stateFor(next))
}
