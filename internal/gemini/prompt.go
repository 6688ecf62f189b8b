package gemini

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/avikds/careerpath-be/internal/models"
)

// BuildPrompt renders the instruction for a generation kind. The templates are
// fixed; only the profile fields (and the job title, where the kind takes one)
// are interpolated, so the same input always produces the same prompt.
func BuildPrompt(kind models.GenerationKind, p models.Profile, jobTitle string) (string, error) {
	switch kind {
	case models.KindCareerSuggestions:
		return fmt.Sprintf(`Act as an expert career counselor. Based on the following student details, suggest a list of 3-5 possible career opportunities and a brief explanation for why each is a good fit. Please be concise and professional.

Student Profile:
- Highest Education: %s
- Major/Field of Study: %s
- Key Skills: %s
- Interests & Hobbies: %s
- Career Goals: %s

Output the response in clean HTML format (using <h3>, <h4>, <p> tags) suitable for directly rendering in a div. Do not include markdown code ticks.`,
			p.Education, p.Major, p.Skills, p.Interests, p.Goals), nil

	case models.KindCoverLetter:
		return fmt.Sprintf(`Write a professional cover letter for a job as a %s based on the following applicant details. The letter should highlight their skills and enthusiasm.

Applicant Profile:
- Education: %s in %s
- Skills: %s
- Interests & Hobbies: %s
- Career Goals: %s

Output in concise HTML format (using <p> tags for paragraphs). Do not include markdown code ticks.`,
			jobTitle, p.Education, p.Major, p.Skills, p.Interests, p.Goals), nil

	case models.KindInterviewPrep:
		return fmt.Sprintf(`Generate a list of 5 common interview questions for a %s position, and provide a brief, professional suggested answer for each question based on the following candidate profile.

Candidate Profile:
- Education: %s in %s
- Skills: %s
- Interests & Hobbies: %s
- Career Goals: %s

Output in clean HTML format (using <h3>, <h4>, <p> tags). Do not include markdown code ticks.`,
			jobTitle, p.Education, p.Major, p.Skills, p.Interests, p.Goals), nil

	case models.KindRoadmap:
		return fmt.Sprintf(`Generate a step-by-step career roadmap towards a role as a %s for a student. The student's profile is as follows:
- Education: %s in %s
- Skills: %s
- Interests: %s
- Career Goals: %s

The roadmap should be structured with actionable steps over a timeline. Output in clean HTML format (using <h3>, <h4>, <p> tags). Do not include markdown code ticks.`,
			jobTitle, p.Education, p.Major, p.Skills, p.Interests, p.Goals), nil
	}

	return "", fmt.Errorf("unknown generation kind %q", kind)
}

var (
	headingRe   = regexp.MustCompile(`(?is)<h[1-4][^>]*>(.*?)</h[1-4]>`)
	innerTagsRe = regexp.MustCompile(`<[^>]+>`)
)

// FirstHeading returns the text of the first heading element in an HTML
// fragment, with inner tags stripped and entities decoded. Returns "" when
// the fragment has no heading. The fragment comes from a non-adversarial
// template, so a single pattern beats pulling in a full HTML parser.
func FirstHeading(fragment string) string {
	m := headingRe.FindStringSubmatch(fragment)
	if m == nil {
		return ""
	}
	text := innerTagsRe.ReplaceAllString(m[1], "")
	return strings.TrimSpace(html.UnescapeString(text))
}
