package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikds/careerpath-be/internal/models"
)

var testProfile = models.Profile{
	Education: "Bachelor's Degree",
	Major:     "Computer Science",
	Skills:    "Python",
	Interests: "Gaming",
	Goals:     "Build AI products",
}

// fakeGenerator is a canned TextGenerator for provider-dependent paths.
type fakeGenerator struct {
	markup string
	err    error
	calls  []models.GenerationKind
}

func (f *fakeGenerator) Generate(_ context.Context, kind models.GenerationKind, _ models.Profile, _ string) (string, error) {
	f.calls = append(f.calls, kind)
	if f.err != nil {
		return "", f.err
	}
	return f.markup, nil
}

func seedUser(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	user, err := NewUserService(db).CreateUser(context.Background(), "alice", "alice@x.com", "pw123")
	require.NoError(t, err)
	return user.ID
}

func countLogs(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM career_logs").Scan(&n))
	return n
}

func TestAnalyzeCareer(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	gen := &fakeGenerator{markup: `<h3>Software Engineer</h3><p>Strong Python background.</p>`}
	svc := NewCareerService(db, gen)

	result, err := svc.AnalyzeCareer(context.Background(), userID, testProfile)
	require.NoError(t, err)
	assert.Equal(t, gen.markup, result.Result)
	assert.Equal(t, "Software Engineer", result.SuggestedJobTitle)
	assert.Equal(t, []models.GenerationKind{models.KindCareerSuggestions}, gen.calls)

	// exactly one activity log entry, owned by the caller
	assert.Equal(t, 1, countLogs(t, db))
	var owner int64
	var content string
	require.NoError(t, db.QueryRow("SELECT user_id, generated_content FROM career_logs").Scan(&owner, &content))
	assert.Equal(t, userID, owner)
	assert.Contains(t, content, "career_suggestions")
}

func TestAnalyzeCareerNoHeading(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	svc := NewCareerService(db, &fakeGenerator{markup: `<p>no headings here</p>`})

	result, err := svc.AnalyzeCareer(context.Background(), userID, testProfile)
	require.NoError(t, err)
	assert.Empty(t, result.SuggestedJobTitle)
}

func TestAnalyzeCareerProviderFailure(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	svc := NewCareerService(db, &fakeGenerator{err: errors.New("quota exhausted")})

	_, err := svc.AnalyzeCareer(context.Background(), userID, testProfile)
	assert.ErrorIs(t, err, ErrProvider)
	assert.Equal(t, 0, countLogs(t, db), "failed generation must not be logged")
}

func TestAnalyzeCareerLogWriteFailureIsSwallowed(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	gen := &fakeGenerator{markup: `<h3>Data Engineer</h3>`}
	svc := NewCareerService(db, gen)

	// Simulate a store outage for the append only.
	_, err := db.Exec("DROP TABLE career_logs")
	require.NoError(t, err)

	result, err := svc.AnalyzeCareer(context.Background(), userID, testProfile)
	require.NoError(t, err, "generation succeeded, so the caller must not see the write failure")
	assert.Equal(t, gen.markup, result.Result)
	assert.Equal(t, "Data Engineer", result.SuggestedJobTitle)
}

func TestGenerateForJob(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db)
	gen := &fakeGenerator{markup: `<p>Dear Hiring Manager,</p>`}
	svc := NewCareerService(db, gen)

	markup, err := svc.GenerateForJob(context.Background(), models.KindCoverLetter, testProfile, "Data Scientist")
	require.NoError(t, err)
	assert.Equal(t, gen.markup, markup)
	assert.Equal(t, []models.GenerationKind{models.KindCoverLetter}, gen.calls)
	assert.Equal(t, 0, countLogs(t, db), "follow-up calls never persist")
}

func TestGenerateForJobProviderFailure(t *testing.T) {
	svc := NewCareerService(newTestDB(t), &fakeGenerator{err: errors.New("timeout")})

	_, err := svc.GenerateForJob(context.Background(), models.KindRoadmap, testProfile, "SRE")
	assert.ErrorIs(t, err, ErrProvider)
}

func TestHistory(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	svc := NewCareerService(db, &fakeGenerator{markup: `<h3>First</h3>`})

	ctx := context.Background()
	_, err := svc.AnalyzeCareer(ctx, userID, testProfile)
	require.NoError(t, err)

	svc.generator = &fakeGenerator{markup: `<h3>Second</h3>`}
	_, err = svc.AnalyzeCareer(ctx, userID, testProfile)
	require.NoError(t, err)

	logs, err := svc.History(ctx, userID)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// newest first
	assert.Contains(t, logs[0].GeneratedContent[models.KindCareerSuggestions], "Second")
	assert.Contains(t, logs[1].GeneratedContent[models.KindCareerSuggestions], "First")
	assert.Equal(t, userID, logs[0].UserID)
	assert.Equal(t, testProfile.Major, logs[0].Major)
}

func TestHistoryScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	other, err := NewUserService(db).CreateUser(context.Background(), "bob", "bob@x.com", "pw456")
	require.NoError(t, err)

	svc := NewCareerService(db, &fakeGenerator{markup: `<h3>Alice only</h3>`})
	_, err = svc.AnalyzeCareer(context.Background(), userID, testProfile)
	require.NoError(t, err)

	logs, err := svc.History(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
