package questionnaire

import (
	"math"
	"sort"

	"github.com/posturescan/posture-cli/internal/scoring"
)

// Thresholds for the breakdown shortlists. A category between the two
// (70-79%) appears in neither list; that gap is deliberate.
const (
	issueThreshold    = 70
	strengthThreshold = 80
	shortlistCap      = 3
)

// CategoryAnalysis is one category's compliance percentage.
type CategoryAnalysis struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// Result is the scored outcome of a complete questionnaire. It is
// JSON-serializable and suitable for durable per-user, per-domain storage.
type Result struct {
	RawTotal     int                `json:"raw_total"`
	Percentage   int                `json:"percentage_score"`
	HealthStatus string             `json:"health_status"`
	Breakdown    []CategoryAnalysis `json:"category_breakdown"`
	TopIssues    []CategoryAnalysis `json:"top_issues"`
	TopStrengths []CategoryAnalysis `json:"top_strengths"`
}

// Score converts a full answer map into a compliance result. Callers are
// expected to block scoring until every question is answered; an unanswered
// question that slips through counts as 0 rather than failing.
func Score(answers Answers) Result {
	raw := 0
	categorySums := make(map[string]int, len(Categories()))
	categoryMax := make(map[string]int, len(Categories()))

	for _, q := range Questions() {
		categoryMax[q.Category] += int(AnswerYes)
		v := answers[q.ID]
		if !ValidAnswer(v) {
			v = AnswerNo
		}
		raw += int(v)
		categorySums[q.Category] += int(v)
	}

	percentage := roundPercent(raw, MaxRawTotal)

	breakdown := make([]CategoryAnalysis, 0, len(Categories()))
	for _, name := range Categories() {
		breakdown = append(breakdown, CategoryAnalysis{
			Name:       name,
			Percentage: roundPercent(categorySums[name], categoryMax[name]),
		})
	}

	return Result{
		RawTotal:     raw,
		Percentage:   percentage,
		HealthStatus: scoring.HealthStatus(percentage),
		Breakdown:    breakdown,
		TopIssues:    topIssues(breakdown),
		TopStrengths: topStrengths(breakdown),
	}
}

// topIssues shortlists the weakest categories, ascending, capped to three.
func topIssues(breakdown []CategoryAnalysis) []CategoryAnalysis {
	issues := make([]CategoryAnalysis, 0, len(breakdown))
	for _, ca := range breakdown {
		if ca.Percentage < issueThreshold {
			issues = append(issues, ca)
		}
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Percentage < issues[j].Percentage
	})
	if len(issues) > shortlistCap {
		issues = issues[:shortlistCap]
	}
	return issues
}

// topStrengths shortlists the strongest categories, descending, capped to three.
func topStrengths(breakdown []CategoryAnalysis) []CategoryAnalysis {
	strengths := make([]CategoryAnalysis, 0, len(breakdown))
	for _, ca := range breakdown {
		if ca.Percentage >= strengthThreshold {
			strengths = append(strengths, ca)
		}
	}
	sort.SliceStable(strengths, func(i, j int) bool {
		return strengths[i].Percentage > strengths[j].Percentage
	})
	if len(strengths) > shortlistCap {
		strengths = strengths[:shortlistCap]
	}
	return strengths
}

func roundPercent(sum, max int) int {
	if max == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(max) * 100))
}
