// Package questionnaire provides the application service around the
// compliance questionnaire: answer management, scoring, and persistence.
package questionnaire

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/posturescan/posture-cli/internal/domain/questionnaire"
	sharedErrors "github.com/posturescan/posture-cli/internal/shared/errors"
	"go.uber.org/zap"
)

// Service coordinates questionnaire state for (user, domain) pairs. The
// scoring itself is pure; the service owns loading, saving, and the
// recommendation pass.
type Service struct {
	repo   domain.Repository
	logger *zap.SugaredLogger
}

// NewService creates a questionnaire service.
func NewService(repo domain.Repository, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{repo: repo, logger: logger}
}

// Answer records one answer, creating the submission on first use.
func (s *Service) Answer(ctx context.Context, user, target string, questionID int, value domain.AnswerValue) (*domain.Submission, error) {
	submission, err := s.loadOrCreate(ctx, user, target)
	if err != nil {
		return nil, err
	}

	if err := submission.Answers.Set(questionID, value); err != nil {
		return nil, err
	}
	submission.UpdatedAt = time.Now().UTC()

	// A changed answer invalidates any previously computed result.
	submission.Result = nil
	submission.Recommendations = nil

	if err := s.repo.Save(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}
	return submission, nil
}

// Score computes and persists the compliance result for a fully answered
// questionnaire. An incomplete questionnaire is a caller error; the UI is
// expected to block scoring until all questions are answered.
func (s *Service) Score(ctx context.Context, user, target string) (*domain.Submission, error) {
	submission, err := s.repo.Find(ctx, user, target)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}

	if !submission.Answers.Complete() {
		return nil, fmt.Errorf("%w: missing answers for questions %v",
			sharedErrors.ErrQuestionnaireIncomplete, submission.Answers.Unanswered())
	}

	result := domain.Score(submission.Answers)
	submission.Result = &result
	submission.Recommendations = domain.Recommend(submission.Answers, result.Percentage)
	submission.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to save scored submission: %w", err)
	}

	s.logger.Infow("questionnaire scored",
		"user", user, "domain", target,
		"percentage", result.Percentage, "health", result.HealthStatus)
	return submission, nil
}

// Get retrieves the stored submission for a user and domain.
func (s *Service) Get(ctx context.Context, user, target string) (*domain.Submission, error) {
	submission, err := s.repo.Find(ctx, user, target)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return submission, nil
}

// Clear removes the stored answers and result for a user and domain, the
// lifecycle rule for switching tracked domain or account.
func (s *Service) Clear(ctx context.Context, user, target string) error {
	if err := s.repo.Delete(ctx, user, target); err != nil {
		return fmt.Errorf("failed to clear submission: %w", err)
	}
	s.logger.Infow("questionnaire cleared", "user", user, "domain", target)
	return nil
}

func (s *Service) loadOrCreate(ctx context.Context, user, target string) (*domain.Submission, error) {
	submission, err := s.repo.Find(ctx, user, target)
	if err == nil {
		return submission, nil
	}
	if !errors.Is(err, sharedErrors.ErrSubmissionNotFound) {
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return domain.NewSubmission(user, target)
}
