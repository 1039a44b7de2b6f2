package application

import (
	"fmt"

	questionnaireapp "github.com/posturescan/posture-cli/internal/application/questionnaire"
	ratingapp "github.com/posturescan/posture-cli/internal/application/rating"
	"github.com/posturescan/posture-cli/internal/domain/questionnaire"
	"github.com/posturescan/posture-cli/internal/domain/rating"
	"github.com/posturescan/posture-cli/internal/infrastructure/persistence/json"
	"go.uber.org/zap"
)

// Container holds the repositories and application services shared by the
// CLI commands and the API server.
type Container struct {
	// Repositories
	ScorecardRepo  rating.Repository
	SubmissionRepo questionnaire.Repository

	// Services
	Aggregator    *ratingapp.Aggregator
	Questionnaire *questionnaireapp.Service
}

// ContainerConfig wires the external pieces the container cannot build
// itself.
type ContainerConfig struct {
	DataDir     string
	Provider    ratingapp.SignalProvider
	Logger      *zap.SugaredLogger
	Concurrency int
	RateLimit   int
}

// NewContainer creates the application service container.
func NewContainer(cfg ContainerConfig) (*Container, error) {
	scorecardRepo, err := json.NewScorecardRepository(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create scorecard repository: %w", err)
	}

	submissionRepo, err := json.NewQuestionnaireRepository(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create questionnaire repository: %w", err)
	}

	aggregator := ratingapp.NewAggregator(ratingapp.Config{
		Provider:    cfg.Provider,
		Logger:      cfg.Logger,
		Concurrency: cfg.Concurrency,
		RateLimit:   cfg.RateLimit,
	})

	return &Container{
		ScorecardRepo:  scorecardRepo,
		SubmissionRepo: submissionRepo,
		Aggregator:     aggregator,
		Questionnaire:  questionnaireapp.NewService(submissionRepo, cfg.Logger),
	}, nil
}
