package rating

import (
	"time"

	"github.com/google/uuid"
	sharedErrors "github.com/posturescan/posture-cli/internal/shared/errors"
	"github.com/posturescan/posture-cli/internal/scoring"
)

// CategoryScore is one category's averaged score with its derived grade.
// A category with no contributing sources has no CategoryScore at all; the
// absence is what tells the UI to render "N/A" rather than a zero.
type CategoryScore struct {
	Category Category `json:"category"`
	Score    float64  `json:"score"`
	Grade    string   `json:"grade"`
	Color    string   `json:"color"`
	Stars    int      `json:"stars"`
}

// NewCategoryScore grades a raw 0-10 average into a CategoryScore.
func NewCategoryScore(category Category, score float64) CategoryScore {
	grade := scoring.ToGrade(score, scoring.ScaleTen)
	return CategoryScore{
		Category: category,
		Score:    score,
		Grade:    grade.Letter,
		Color:    grade.Color,
		Stars:    scoring.Stars(grade.Letter),
	}
}

// Scorecard is the aggregate result of rating one domain: the generic
// overall score plus whichever category scores could be computed.
type Scorecard struct {
	id           string
	domain       string
	generatedAt  time.Time
	overallScore float64
	overallGrade string
	categories   map[Category]CategoryScore
}

// NewScorecard creates an empty scorecard for a domain.
func NewScorecard(domain string) (*Scorecard, error) {
	if domain == "" {
		return nil, sharedErrors.ErrEmptyDomain
	}
	return &Scorecard{
		id:          uuid.NewString(),
		domain:      domain,
		generatedAt: time.Now().UTC(),
		categories:  make(map[Category]CategoryScore),
	}, nil
}

// Reconstruct rebuilds a scorecard from persisted state.
func Reconstruct(
	id, domain string,
	generatedAt time.Time,
	overallScore float64,
	overallGrade string,
	categories []CategoryScore,
) *Scorecard {
	sc := &Scorecard{
		id:           id,
		domain:       domain,
		generatedAt:  generatedAt,
		overallScore: overallScore,
		overallGrade: overallGrade,
		categories:   make(map[Category]CategoryScore, len(categories)),
	}
	for _, cs := range categories {
		sc.categories[cs.Category] = cs
	}
	return sc
}

// SetOverall records the generic overall score and its grade.
func (s *Scorecard) SetOverall(score float64) {
	s.overallScore = score
	s.overallGrade = scoring.ToGrade(score, scoring.ScaleTen).Letter
}

// AddCategoryScore records one category's computed score. Categories whose
// sources all failed are simply never added.
func (s *Scorecard) AddCategoryScore(cs CategoryScore) {
	s.categories[cs.Category] = cs
}

// CategoryScore returns a category's score, with ok=false when the category
// was not scorable for this run.
func (s *Scorecard) CategoryScore(category Category) (CategoryScore, bool) {
	cs, ok := s.categories[category]
	return cs, ok
}

// CategoryScores returns every scored category in presentation order.
func (s *Scorecard) CategoryScores() []CategoryScore {
	out := make([]CategoryScore, 0, len(s.categories))
	for _, category := range AllCategories {
		if cs, ok := s.categories[category]; ok {
			out = append(out, cs)
		}
	}
	return out
}

// Empty reports whether no category could be scored at all, the state the
// UI surfaces as a generic "no data" view.
func (s *Scorecard) Empty() bool {
	return len(s.categories) == 0
}

func (s *Scorecard) ID() string             { return s.id }
func (s *Scorecard) Domain() string         { return s.domain }
func (s *Scorecard) GeneratedAt() time.Time { return s.generatedAt }
func (s *Scorecard) OverallScore() float64  { return s.overallScore }
func (s *Scorecard) OverallGrade() string   { return s.overallGrade }
