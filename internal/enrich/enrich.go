// Package enrich derives structured profile data (skills, contact details)
// from raw resume text using the hosted LLM. Extraction failures surface as
// typed errors; nothing substitutes fabricated data for a failed call.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/skippr/growscore/internal/llm"
	"github.com/skippr/growscore/internal/schemas"
	"github.com/skippr/growscore/internal/types"
)

// ExtractionError wraps a failed extraction with the field it was for.
type ExtractionError struct {
	Field string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s extraction failed: %v", e.Field, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Service runs LLM-backed extraction over resume text.
type Service struct {
	client llm.Client
}

// NewService creates an enrichment service. The client must not be nil.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Enrichment bundles everything extracted from one resume.
type Enrichment struct {
	Skills  []string       `json:"skills"`
	Contact *types.Contact `json:"contact,omitempty"`
}

// Extract runs skill and contact extraction concurrently and returns both.
// Either extraction failing fails the whole call.
func (s *Service) Extract(ctx context.Context, resumeText string) (*Enrichment, error) {
	if resumeText == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	var out Enrichment
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		skills, err := s.ExtractSkills(gctx, resumeText)
		if err != nil {
			return err
		}
		out.Skills = skills
		return nil
	})

	g.Go(func() error {
		contact, err := s.ExtractContact(gctx, resumeText)
		if err != nil {
			return err
		}
		out.Contact = contact
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtractSkills pulls 5-10 professional skills from resume text.
func (s *Service) ExtractSkills(ctx context.Context, resumeText string) ([]string, error) {
	raw, err := s.client.GenerateJSON(ctx, llm.SkillExtractionPrompt(resumeText), llm.TierLite)
	if err != nil {
		return nil, &ExtractionError{Field: "skills", Cause: err}
	}

	if err := schemas.Validate(schemas.SkillList, raw); err != nil {
		return nil, &ExtractionError{Field: "skills", Cause: err}
	}

	var payload struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &ExtractionError{Field: "skills", Cause: err}
	}
	return payload.Skills, nil
}

// ExtractContact pulls contact details from resume text.
func (s *Service) ExtractContact(ctx context.Context, resumeText string) (*types.Contact, error) {
	raw, err := s.client.GenerateJSON(ctx, llm.ContactExtractionPrompt(resumeText), llm.TierLite)
	if err != nil {
		return nil, &ExtractionError{Field: "contact", Cause: err}
	}

	if err := schemas.Validate(schemas.Contact, raw); err != nil {
		return nil, &ExtractionError{Field: "contact", Cause: err}
	}

	var contact types.Contact
	if err := json.Unmarshal([]byte(raw), &contact); err != nil {
		return nil, &ExtractionError{Field: "contact", Cause: err}
	}
	return &contact, nil
}
