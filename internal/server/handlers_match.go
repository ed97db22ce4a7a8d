package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skippr/growscore/internal/ingestion"
	"github.com/skippr/growscore/internal/jd"
	"github.com/skippr/growscore/internal/llm"
	"github.com/skippr/growscore/internal/scoring"
	"github.com/skippr/growscore/internal/types"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// UploadResumeRequest is the JSON alternative to a multipart upload.
type UploadResumeRequest struct {
	Text string `json:"text"`
}

// handleUploadResume accepts a resume as a multipart file upload (field
// "resume") or as JSON text, stores the extracted text, and runs LLM
// enrichment when available. Enrichment failure does not lose the upload:
// the text is stored and the error reported.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	text, err := s.readResume(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile.ResumeText = text

	var enrichErr error
	if s.enricher != nil {
		enrichment, err := s.enricher.Extract(r.Context(), text)
		if err != nil {
			enrichErr = err
			log.Printf("resume enrichment failed for profile %s: %v", name, err)
		} else {
			profile.Skills = enrichment.Skills
			profile.Contact = enrichment.Contact
		}
	}

	if err := s.saveProfile(r, userID, name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	response := map[string]any{
		"resume_chars": len(profile.ResumeText),
		"skills":       profile.Skills,
		"contact":      profile.Contact,
	}
	if enrichErr != nil {
		response["enrichment_error"] = enrichErr.Error()
	}
	s.jsonResponse(w, http.StatusOK, response)
}

// readResume extracts resume text from either a multipart upload or a JSON
// body.
func (s *Server) readResume(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", fmt.Errorf("failed to parse upload: %w", err)
		}
		file, header, err := r.FormFile("resume")
		if err != nil {
			return "", fmt.Errorf("missing file field 'resume': %w", err)
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return "", fmt.Errorf("failed to read upload: %w", err)
		}
		return ingestion.ExtractUpload(header.Filename, data)
	}

	var req UploadResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", fmt.Errorf("invalid request body")
	}
	text := ingestion.CleanText(req.Text)
	if text == "" {
		return "", fmt.Errorf("resume text is empty")
	}
	return text, nil
}

// JDMatchRequest carries job descriptions as pasted text and/or posting URLs.
type JDMatchRequest struct {
	JDTexts []string `json:"jd_texts"`
	JDURLs  []string `json:"jd_urls"`
}

// handleJDMatch scores the stored resume against each submitted job
// description. URLs are fetched and extracted before matching.
func (s *Server) handleJDMatch(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if profile.ResumeText == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Profile has no resume text; upload a resume first")
		return
	}

	var req JDMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	jdTexts := make([]string, 0, len(req.JDTexts)+len(req.JDURLs))
	for _, text := range req.JDTexts {
		if strings.TrimSpace(text) == "" {
			s.errorResponse(w, http.StatusBadRequest, "Empty job description text")
			return
		}
		jdTexts = append(jdTexts, text)
	}
	for _, url := range req.JDURLs {
		text, err := jd.FromURL(r.Context(), url, s.useBrowser)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, fmt.Sprintf("failed to ingest %s: %v", url, err))
			return
		}
		jdTexts = append(jdTexts, text)
	}
	if len(jdTexts) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one job description is required")
		return
	}

	result, err := s.matcher.Match(r.Context(), profile.ResumeText, jdTexts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Matching failed: "+err.Error())
		return
	}

	matches := make([]types.JDMatch, len(result.Scores))
	for i, score := range result.Scores {
		matches[i] = types.JDMatch{
			JDText: jdTexts[i],
			Score:  score,
			Method: string(result.Method),
		}
	}
	profile.JDMatches = matches

	if err := s.saveProfile(r, userID, name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleScore computes and stores the composite quality-of-hire score.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sub := profile.SubScores()
	profile.QoHScore = scoring.Composite(sub)

	if err := s.saveProfile(r, userID, name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"qoh_score":    profile.QoHScore,
		"sub_scores":   sub,
		"verification": profile.Verification(),
	})
}

// generateRoadmap runs the roadmap prompt for a profile.
func (s *Server) generateRoadmap(r *http.Request, profile *types.CandidateProfile) (string, error) {
	if s.llmClient == nil {
		return "", fmt.Errorf("roadmap generation requires an LLM API key")
	}
	if profile.ResumeText == "" {
		return "", fmt.Errorf("profile has no resume text")
	}

	jdTexts := make([]string, 0, len(profile.JDMatches))
	for _, m := range profile.JDMatches {
		if m.JDText != "" {
			jdTexts = append(jdTexts, m.JDText)
		}
	}

	prompt := llm.RoadmapPrompt(profile.ResumeText, profile.Skills, jdTexts)
	return s.llmClient.GenerateContent(r.Context(), prompt, llm.TierAdvanced)
}

// handleRoadmap generates and stores a growth roadmap.
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	roadmap, err := s.generateRoadmap(r, profile)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	now := time.Now().UTC()
	profile.Roadmap = roadmap
	profile.RoadmapUpdated = &now

	if err := s.saveProfile(r, userID, name, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roadmap":         profile.Roadmap,
		"roadmap_updated": profile.RoadmapUpdated,
	})
}

// handleRoadmapStream generates a roadmap and streams progress over SSE.
func (s *Server) handleRoadmapStream(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	name := r.PathValue("name")
	profile, err := s.loadProfile(r, userID, name)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = sse.WriteEvent("progress", map[string]string{"stage": "generating"})

	roadmap, err := s.generateRoadmap(r, profile)
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	now := time.Now().UTC()
	profile.Roadmap = roadmap
	profile.RoadmapUpdated = &now

	if err := s.saveProfile(r, userID, name, profile); err != nil {
		sse.WriteError("Database error: " + err.Error())
		return
	}

	_ = sse.WriteEvent("roadmap", map[string]string{"roadmap": roadmap})
	sse.WriteComplete(name, "completed")
}
