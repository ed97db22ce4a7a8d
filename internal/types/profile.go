// Package types holds shared API and domain types.
package types

import (
	"time"

	"github.com/skippr/growscore/internal/scoring"
	"github.com/skippr/growscore/internal/wizard"
)

// Contact holds contact details extracted from a resume.
type Contact struct {
	Name  string   `json:"name,omitempty"`
	Email string   `json:"email,omitempty"`
	Phone string   `json:"phone,omitempty"`
	Links []string `json:"links,omitempty"`
}

// Reference is a single professional reference entered during the wizard.
type Reference struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Relation string `json:"relation,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Education is a single education entry.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Field  string `json:"field,omitempty"`
	Year   string `json:"year,omitempty"`
}

// HRCheck captures the HR verification step answers.
type HRCheck struct {
	EligibleToWork    bool   `json:"eligible_to_work"`
	BackgroundConsent bool   `json:"background_consent"`
	Notes             string `json:"notes,omitempty"`
}

// JDMatch is one scored job description for a candidate.
type JDMatch struct {
	JDText string  `json:"jd_text,omitempty"`
	Score  float64 `json:"score"`
	Method string  `json:"method,omitempty"`
}

// CandidateProfile is the full evaluation state for one candidate. It is
// persisted as a JSONB blob keyed by (user, profile name).
type CandidateProfile struct {
	ResumeText     string      `json:"resume_text,omitempty"`
	Contact        *Contact    `json:"contact,omitempty"`
	Skills         []string    `json:"skills,omitempty"`
	BehaviorScore  float64     `json:"behavior_score"`
	References     []Reference `json:"references,omitempty"`
	Backchannel    []Reference `json:"backchannel,omitempty"`
	Education      []Education `json:"education,omitempty"`
	HRCheck        *HRCheck    `json:"hr_check,omitempty"`
	JDMatches      []JDMatch   `json:"jd_matches,omitempty"`
	QoHScore       float64     `json:"qoh_score"`
	Roadmap        string      `json:"roadmap,omitempty"`
	RoadmapUpdated *time.Time  `json:"roadmap_updated,omitempty"`
	WizardStep     wizard.Step `json:"wizard_step,omitempty"`
}

// JDScores returns the per-JD match scores in order.
func (p *CandidateProfile) JDScores() []float64 {
	if len(p.JDMatches) == 0 {
		return nil
	}
	scores := make([]float64, len(p.JDMatches))
	for i, m := range p.JDMatches {
		scores[i] = m.Score
	}
	return scores
}

// SubScores derives the four composite inputs from the profile's current
// state. References always yield the placeholder constant.
func (p *CandidateProfile) SubScores() scoring.SubScores {
	return scoring.SubScores{
		JDMatch:    scoring.AverageJD(p.JDScores()),
		References: scoring.DefaultReferenceScore,
		Behavior:   p.BehaviorScore,
		Skills:     scoring.SkillsScore(len(p.Skills)),
	}
}

// VerificationSummary reports which evaluation steps have content, shown
// alongside the composite score.
type VerificationSummary struct {
	ResumeUploaded  bool `json:"resume_uploaded"`
	SkillsSelected  bool `json:"skills_selected"`
	BehaviorDone    bool `json:"behavior_done"`
	ReferencesAdded bool `json:"references_added"`
	EducationAdded  bool `json:"education_added"`
	HRCheckDone     bool `json:"hr_check_done"`
	JDMatched       bool `json:"jd_matched"`
}

// Verification derives a summary of completed steps from the profile.
func (p *CandidateProfile) Verification() VerificationSummary {
	return VerificationSummary{
		ResumeUploaded:  p.ResumeText != "",
		SkillsSelected:  len(p.Skills) > 0,
		BehaviorDone:    p.BehaviorScore > 0,
		ReferencesAdded: len(p.References) > 0,
		EducationAdded:  len(p.Education) > 0,
		HRCheckDone:     p.HRCheck != nil,
		JDMatched:       len(p.JDMatches) > 0,
	}
}

// Candidate is one entry in a recruiter ranking request.
type Candidate struct {
	Name      string            `json:"name" validate:"required"`
	SubScores scoring.SubScores `json:"sub_scores"`
}

// RankedCandidate is a candidate with its weighted composite.
type RankedCandidate struct {
	Name      string            `json:"name"`
	SubScores scoring.SubScores `json:"sub_scores"`
	Score     float64           `json:"score"`
}

// RankingRequest ranks candidates using recruiter-chosen weights.
type RankingRequest struct {
	Weights    scoring.Weights `json:"weights"`
	Candidates []Candidate     `json:"candidates" validate:"required,min=1,dive"`
}
