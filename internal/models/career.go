package models

import "time"

// GenerationKind identifies which piece of career guidance to produce.
type GenerationKind string

const (
	KindCareerSuggestions GenerationKind = "career_suggestions"
	KindCoverLetter       GenerationKind = "cover_letter"
	KindInterviewPrep     GenerationKind = "interview_prep"
	KindRoadmap           GenerationKind = "roadmap"
)

// Profile is the student profile submitted with every generation request.
// It is transient input; it is only persisted as part of a CareerLog.
type Profile struct {
	Education string `json:"education"`
	Major     string `json:"major"`
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
	Goals     string `json:"goals"`
}

// CareerLog is one append-only record of a career analysis and its output.
type CareerLog struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
	Profile
	GeneratedContent map[GenerationKind]string `json:"generatedContent"`
	CreatedAt        time.Time                 `json:"createdAt"`
}

// AnalysisResult is the response body of a career analysis call. The
// suggested job title is the first heading of the generated markup, so the
// client can prefill follow-up requests; it is empty when no heading exists.
type AnalysisResult struct {
	Result            string `json:"result"`
	SuggestedJobTitle string `json:"suggestedJobTitle"`
}
