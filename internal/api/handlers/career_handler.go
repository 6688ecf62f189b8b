package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avikds/careerpath-be/internal/auth"
	"github.com/avikds/careerpath-be/internal/models"
	"github.com/avikds/careerpath-be/internal/services"
)

// CareerHandler handles HTTP requests for career guidance generation.
type CareerHandler struct {
	service services.CareerServiceProvider
}

// NewCareerHandler creates a new CareerHandler.
func NewCareerHandler(service services.CareerServiceProvider) *CareerHandler {
	return &CareerHandler{service: service}
}

// ProfilePayload is the request body shared by all generation endpoints.
// JobTitle is only required by the follow-up endpoints.
type ProfilePayload struct {
	models.Profile
	JobTitle string `json:"jobTitle"`
}

func (p *ProfilePayload) missingField(needJobTitle bool) string {
	switch {
	case p.Education == "":
		return "education"
	case p.Major == "":
		return "major"
	case p.Skills == "":
		return "skills"
	case p.Interests == "":
		return "interests"
	case p.Goals == "":
		return "goals"
	case needJobTitle && p.JobTitle == "":
		return "jobTitle"
	}
	return ""
}

// Analyze handles the initial career analysis call. It is the only endpoint
// that appends to the activity log.
func (h *CareerHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	payload, ok := decodeProfile(w, r, false)
	if !ok {
		return
	}

	result, err := h.service.AnalyzeCareer(r.Context(), claims.UserID, payload.Profile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate career suggestions")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CoverLetter generates a cover letter for the given job title.
func (h *CareerHandler) CoverLetter(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, models.KindCoverLetter, "Failed to generate cover letter")
}

// Interview generates interview prep questions for the given job title.
func (h *CareerHandler) Interview(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, models.KindInterviewPrep, "Failed to generate interview prep")
}

// Roadmap generates a step-by-step career roadmap towards the given job title.
func (h *CareerHandler) Roadmap(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, models.KindRoadmap, "Failed to generate roadmap")
}

// History returns the caller's past analyses, newest first.
func (h *CareerHandler) History(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	logs, err := h.service.History(r.Context(), claims.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to load career history")
		writeError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// generate is the shared path for the follow-up endpoints. They all require a
// job title and never touch the activity log.
func (h *CareerHandler) generate(w http.ResponseWriter, r *http.Request, kind models.GenerationKind, failMsg string) {
	if _, ok := auth.ClaimsFrom(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	payload, ok := decodeProfile(w, r, true)
	if !ok {
		return
	}

	markup, err := h.service.GenerateForJob(r.Context(), kind, payload.Profile, payload.JobTitle)
	if err != nil {
		if !errors.Is(err, services.ErrProvider) {
			log.Error().Err(err).Str("kind", string(kind)).Msg("Unexpected generation failure")
		}
		writeError(w, http.StatusInternalServerError, failMsg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": markup})
}

func decodeProfile(w http.ResponseWriter, r *http.Request, needJobTitle bool) (ProfilePayload, bool) {
	var payload ProfilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return payload, false
	}
	if field := payload.missingField(needJobTitle); field != "" {
		writeError(w, http.StatusBadRequest, "Missing required field: "+field)
		return payload, false
	}
	return payload, true
}
