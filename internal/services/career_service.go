package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/avikds/careerpath-be/internal/gemini"
	"github.com/avikds/careerpath-be/internal/models"
)

// ErrProvider wraps any failure of the generation provider. Handlers surface
// it as a generic failure so upstream diagnostics never reach the client.
var ErrProvider = errors.New("content generation failed")

// CareerServiceProvider defines the interface for career guidance services.
type CareerServiceProvider interface {
	AnalyzeCareer(ctx context.Context, userID int64, profile models.Profile) (models.AnalysisResult, error)
	GenerateForJob(ctx context.Context, kind models.GenerationKind, profile models.Profile, jobTitle string) (string, error)
	History(ctx context.Context, userID int64) ([]models.CareerLog, error)
}

// CareerService orchestrates generation calls and the activity log.
type CareerService struct {
	db        *sql.DB
	generator gemini.TextGenerator
}

// NewCareerService creates a new CareerService.
func NewCareerService(db *sql.DB, generator gemini.TextGenerator) *CareerService {
	return &CareerService{db: db, generator: generator}
}

// AnalyzeCareer generates career suggestions for a profile and appends the
// outcome to the caller's activity log. The log write is best-effort: once
// generation has succeeded the response is fixed, and a failed write is only
// logged, never surfaced.
func (s *CareerService) AnalyzeCareer(ctx context.Context, userID int64, profile models.Profile) (models.AnalysisResult, error) {
	genID := uuid.NewString()

	markup, err := s.generator.Generate(ctx, models.KindCareerSuggestions, profile, "")
	if err != nil {
		log.Error().Err(err).Str("generation_id", genID).Int64("user_id", userID).
			Msg("Career analysis generation failed")
		return models.AnalysisResult{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	if err := s.appendLog(ctx, userID, profile, models.KindCareerSuggestions, markup); err != nil {
		log.Error().Err(err).Str("generation_id", genID).Int64("user_id", userID).
			Msg("Failed to save career log entry")
	}

	return models.AnalysisResult{
		Result:            markup,
		SuggestedJobTitle: gemini.FirstHeading(markup),
	}, nil
}

// GenerateForJob generates a follow-up artifact (cover letter, interview prep
// or roadmap) for a specific job title. Follow-up calls are never persisted.
func (s *CareerService) GenerateForJob(ctx context.Context, kind models.GenerationKind, profile models.Profile, jobTitle string) (string, error) {
	genID := uuid.NewString()

	markup, err := s.generator.Generate(ctx, kind, profile, jobTitle)
	if err != nil {
		log.Error().Err(err).Str("generation_id", genID).Str("kind", string(kind)).
			Msg("Follow-up generation failed")
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return markup, nil
}

// History returns the caller's activity log entries, newest first.
func (s *CareerService) History(ctx context.Context, userID int64) ([]models.CareerLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, education, major, skills, interests, goals, generated_content, created_at
		FROM career_logs WHERE user_id = ? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.CareerLog{}
	for rows.Next() {
		var entry models.CareerLog
		var content string
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Education, &entry.Major,
			&entry.Skills, &entry.Interests, &entry.Goals, &content, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(content), &entry.GeneratedContent); err != nil {
			return nil, fmt.Errorf("corrupt generated_content in log %d: %w", entry.ID, err)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

func (s *CareerService) appendLog(ctx context.Context, userID int64, profile models.Profile, kind models.GenerationKind, markup string) error {
	content, err := json.Marshal(map[models.GenerationKind]string{kind: markup})
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO career_logs (user_id, education, major, skills, interests, goals, generated_content)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, profile.Education, profile.Major, profile.Skills, profile.Interests, profile.Goals, string(content))
	return err
}
