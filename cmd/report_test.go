package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/posturescan/posture-cli/internal/application"
	questionnairedomain "github.com/posturescan/posture-cli/internal/domain/questionnaire"
	"github.com/posturescan/posture-cli/internal/domain/rating"
	"github.com/posturescan/posture-cli/internal/infrastructure/signals"
)

func newReportTestContainer(t *testing.T) *application.Container {
	t.Helper()
	provider, err := signals.NewStaticProvider()
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}
	container, err := application.NewContainer(application.ContainerConfig{
		DataDir:  t.TempDir(),
		Provider: provider,
		Logger:   zap.NewNop().Sugar(),
	})
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	return container
}

func TestBuildReportDataWithScorecardAndAssessment(t *testing.T) {
	container := newReportTestContainer(t)
	ctx := context.Background()

	scorecard, err := container.Aggregator.ScoreDomain(ctx, "example.com")
	if err != nil {
		t.Fatalf("ScoreDomain: %v", err)
	}
	if err := container.ScorecardRepo.Save(ctx, scorecard); err != nil {
		t.Fatalf("Save scorecard: %v", err)
	}

	for _, q := range questionnairedomain.Questions() {
		if _, err := container.Questionnaire.Answer(ctx, "alice", "example.com", q.ID, questionnairedomain.AnswerNo); err != nil {
			t.Fatalf("Answer %d: %v", q.ID, err)
		}
	}
	if _, err := container.Questionnaire.Score(ctx, "alice", "example.com"); err != nil {
		t.Fatalf("Score questionnaire: %v", err)
	}

	data, err := buildReportData(ctx, container, "alice", "example.com")
	if err != nil {
		t.Fatalf("buildReportData: %v", err)
	}
	if !data.HasSignalData {
		t.Error("expected signal data in report")
	}
	if !data.HasAssessment {
		t.Error("expected assessment data in report")
	}
	if data.Compliance != 0 || data.HealthStatus != "Poor" {
		t.Errorf("compliance = %d (%s), want 0 (Poor)", data.Compliance, data.HealthStatus)
	}
	if len(data.Categories) != len(rating.AllCategories) {
		t.Errorf("got %d category rows, want %d", len(data.Categories), len(rating.AllCategories))
	}
	if len(data.Recommendations) == 0 {
		t.Error("expected recommendations for an all-no assessment")
	}
}

func TestBuildReportDataWithoutStoredState(t *testing.T) {
	container := newReportTestContainer(t)

	data, err := buildReportData(context.Background(), container, "alice", "fresh.example")
	if err != nil {
		t.Fatalf("buildReportData: %v", err)
	}
	if data.HasSignalData || data.HasAssessment {
		t.Errorf("expected empty report data, got %+v", data)
	}
}

func TestGenerateMarkdownReport(t *testing.T) {
	data := ReportData{
		Domain:        "example.com",
		GeneratedAt:   "2026-08-30 12:00",
		OverallScore:  7.5,
		OverallGrade:  "B",
		HasSignalData: true,
		HasAssessment: true,
		Compliance:    85,
		HealthStatus:  "Excellent",
		Categories: []CategoryRow{
			{Category: "Web Encryption", Score: "9.2", Grade: "A", Scored: true},
			{Category: "Breach Events", Score: "N/A", Grade: "-"},
		},
		Recommendations: []string{"MFA"},
		FooterDate:      "2026-08-30",
	}

	content, err := generateMarkdownReport(data)
	if err != nil {
		t.Fatalf("generateMarkdownReport: %v", err)
	}
	for _, want := range []string{
		"# Posture Report: example.com",
		"**7.5 / 10** (grade B)",
		"| Web Encryption | 9.2 | A |",
		"| Breach Events | N/A | - |",
		"Compliance: **85%** (Excellent)",
		"- MFA",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("markdown report missing %q:\n%s", want, content)
		}
	}
}

func TestGenerateMarkdownReportNoData(t *testing.T) {
	content, err := generateMarkdownReport(ReportData{Domain: "example.com", FooterDate: "2026-08-30"})
	if err != nil {
		t.Fatalf("generateMarkdownReport: %v", err)
	}
	if !strings.Contains(content, "No signal data is stored for this domain.") {
		t.Errorf("expected no-data notice, got:\n%s", content)
	}
}

func TestGeneratePDFReportBytes(t *testing.T) {
	data := ReportData{
		Domain:        "example.com",
		GeneratedAt:   "2026-08-30 12:00",
		OverallScore:  7.5,
		OverallGrade:  "B",
		HasSignalData: true,
		Categories: []CategoryRow{
			{Category: "Web Encryption", Score: "9.2", Grade: "A", Scored: true},
		},
		FooterDate: "2026-08-30",
	}

	content, err := generatePDFReportBytes(data)
	if err != nil {
		t.Fatalf("generatePDFReportBytes: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Errorf("expected PDF magic bytes, got %q", content[:8])
	}
}
