// Package matching scores a resume against job descriptions, preferring the
// hosted LLM's semantic scores and falling back to the deterministic lexical
// overlap when the LLM is unavailable or returns invalid output. The result
// always names the strategy that produced it, so callers can tell a real
// semantic score from a fallback.
package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/skippr/growscore/internal/llm"
	"github.com/skippr/growscore/internal/schemas"
	"github.com/skippr/growscore/internal/scoring"
)

// Method names the strategy that produced a set of scores.
type Method string

// Scoring strategies.
const (
	MethodSemantic Method = "semantic"
	MethodLexical  Method = "lexical"
)

// Result carries per-JD scores plus the strategy that produced them. When the
// semantic strategy failed and the lexical fallback was used, FallbackReason
// records why.
type Result struct {
	Scores         []float64 `json:"scores"`
	Method         Method    `json:"method"`
	FallbackReason string    `json:"fallback_reason,omitempty"`
}

// Service scores resumes against job descriptions. A nil LLM client makes
// the service lexical-only.
type Service struct {
	client llm.Client
}

// NewService creates a matching service. client may be nil.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

type scoresPayload struct {
	Scores []float64 `json:"scores"`
}

// Match scores one resume against each job description. Each JD is scored
// independently; no normalization is applied across JDs.
func (s *Service) Match(ctx context.Context, resumeText string, jdTexts []string) (Result, error) {
	if len(jdTexts) == 0 {
		return Result{}, fmt.Errorf("at least one job description is required")
	}

	if s.client != nil {
		scores, err := s.semantic(ctx, resumeText, jdTexts)
		if err == nil {
			return Result{Scores: scores, Method: MethodSemantic}, nil
		}
		log.Printf("[matching] semantic scoring failed, using lexical fallback: %v", err)
		return Result{
			Scores:         scoring.LexicalMatchAll(resumeText, jdTexts),
			Method:         MethodLexical,
			FallbackReason: err.Error(),
		}, nil
	}

	return Result{
		Scores: scoring.LexicalMatchAll(resumeText, jdTexts),
		Method: MethodLexical,
	}, nil
}

// semantic delegates scoring to the LLM and validates the response against
// the jd_scores schema before trusting it.
func (s *Service) semantic(ctx context.Context, resumeText string, jdTexts []string) ([]float64, error) {
	prompt := llm.JDMatchPrompt(resumeText, jdTexts)

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("LLM request failed: %w", err)
	}

	if err := schemas.Validate(schemas.JDScores, raw); err != nil {
		return nil, fmt.Errorf("LLM response rejected: %w", err)
	}

	var payload scoresPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode scores: %w", err)
	}

	if len(payload.Scores) != len(jdTexts) {
		return nil, fmt.Errorf("expected %d scores, got %d", len(jdTexts), len(payload.Scores))
	}

	return payload.Scores, nil
}
