// Package api adapts the application layer to the HTTP server's service
// interfaces, translating domain aggregates into wire DTOs.
package api

import (
	"context"

	httpapi "github.com/posturescan/posture-cli/internal/api"
	appquestionnaire "github.com/posturescan/posture-cli/internal/application/questionnaire"
	apprating "github.com/posturescan/posture-cli/internal/application/rating"
	"github.com/posturescan/posture-cli/internal/domain/questionnaire"
	"github.com/posturescan/posture-cli/internal/domain/rating"
)

// RatingAdapter implements httpapi.RatingService over the aggregator and
// the scorecard repository. Scoring a domain both computes and persists
// the scorecard, so a rescan always replaces the stored state.
type RatingAdapter struct {
	aggregator *apprating.Aggregator
	repo       rating.Repository
}

func NewRatingAdapter(aggregator *apprating.Aggregator, repo rating.Repository) *RatingAdapter {
	return &RatingAdapter{aggregator: aggregator, repo: repo}
}

func (a *RatingAdapter) ListScorecards(ctx context.Context) ([]httpapi.Scorecard, error) {
	scorecards, err := a.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]httpapi.Scorecard, 0, len(scorecards))
	for _, sc := range scorecards {
		out = append(out, toScorecardDTO(sc))
	}
	return out, nil
}

func (a *RatingAdapter) GetScorecard(ctx context.Context, domain string) (*httpapi.Scorecard, error) {
	scorecard, err := a.repo.FindByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	dto := toScorecardDTO(scorecard)
	return &dto, nil
}

func (a *RatingAdapter) ScoreDomain(ctx context.Context, domain string) (*httpapi.Scorecard, error) {
	scorecard, err := a.aggregator.ScoreDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	if err := a.repo.Save(ctx, scorecard); err != nil {
		return nil, err
	}
	dto := toScorecardDTO(scorecard)
	return &dto, nil
}

func (a *RatingAdapter) DeleteScorecard(ctx context.Context, domain string) error {
	return a.repo.Delete(ctx, domain)
}

func toScorecardDTO(sc *rating.Scorecard) httpapi.Scorecard {
	dto := httpapi.Scorecard{
		ID:           sc.ID(),
		Domain:       sc.Domain(),
		GeneratedAt:  sc.GeneratedAt(),
		OverallScore: sc.OverallScore(),
		OverallGrade: sc.OverallGrade(),
		Categories:   make([]httpapi.CategoryScore, 0, len(sc.CategoryScores())),
	}
	for _, cs := range sc.CategoryScores() {
		dto.Categories = append(dto.Categories, httpapi.CategoryScore{
			Category: string(cs.Category),
			Score:    cs.Score,
			Grade:    cs.Grade,
			Color:    cs.Color,
			Stars:    cs.Stars,
		})
	}
	return dto
}

// QuestionnaireAdapter implements httpapi.QuestionnaireService over the
// questionnaire application service.
type QuestionnaireAdapter struct {
	service *appquestionnaire.Service
}

func NewQuestionnaireAdapter(service *appquestionnaire.Service) *QuestionnaireAdapter {
	return &QuestionnaireAdapter{service: service}
}

func (a *QuestionnaireAdapter) Questions() []httpapi.Question {
	questions := questionnaire.Questions()
	out := make([]httpapi.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, httpapi.Question{ID: q.ID, Text: q.Text, Category: q.Category})
	}
	return out
}

func (a *QuestionnaireAdapter) GetSubmission(ctx context.Context, user, domain string) (*httpapi.Submission, error) {
	submission, err := a.service.Get(ctx, user, domain)
	if err != nil {
		return nil, err
	}
	return toSubmissionDTO(submission), nil
}

func (a *QuestionnaireAdapter) Answer(ctx context.Context, user, domain string, questionID, value int) (*httpapi.Submission, error) {
	submission, err := a.service.Answer(ctx, user, domain, questionID, questionnaire.AnswerValue(value))
	if err != nil {
		return nil, err
	}
	return toSubmissionDTO(submission), nil
}

func (a *QuestionnaireAdapter) ScoreSubmission(ctx context.Context, user, domain string) (*httpapi.Submission, error) {
	submission, err := a.service.Score(ctx, user, domain)
	if err != nil {
		return nil, err
	}
	return toSubmissionDTO(submission), nil
}

func (a *QuestionnaireAdapter) ClearSubmission(ctx context.Context, user, domain string) error {
	return a.service.Clear(ctx, user, domain)
}

func toSubmissionDTO(s *questionnaire.Submission) *httpapi.Submission {
	dto := &httpapi.Submission{
		ID:        s.ID,
		User:      s.User,
		Domain:    s.Domain,
		Answers:   make(map[int]int, len(s.Answers)),
		UpdatedAt: s.UpdatedAt,
	}
	for id, value := range s.Answers {
		dto.Answers[id] = int(value)
	}
	if s.Result != nil {
		dto.Result = &httpapi.Result{
			RawTotal:     s.Result.RawTotal,
			Percentage:   s.Result.Percentage,
			HealthStatus: s.Result.HealthStatus,
			Breakdown:    toAnalysisDTOs(s.Result.Breakdown),
			TopIssues:    toAnalysisDTOs(s.Result.TopIssues),
			TopStrengths: toAnalysisDTOs(s.Result.TopStrengths),
		}
	}
	for _, code := range s.Recommendations {
		dto.Recommendations = append(dto.Recommendations, string(code))
	}
	return dto
}

func toAnalysisDTOs(in []questionnaire.CategoryAnalysis) []httpapi.CategoryAnalysis {
	out := make([]httpapi.CategoryAnalysis, 0, len(in))
	for _, ca := range in {
		out = append(out, httpapi.CategoryAnalysis{Name: ca.Name, Percentage: ca.Percentage})
	}
	return out
}

// Health is a trivial HealthService for a server whose only dependency is
// the local filesystem.
type Health struct{}

func (Health) Check(ctx context.Context) error { return nil }
func (Health) Ready(ctx context.Context) error { return nil }
