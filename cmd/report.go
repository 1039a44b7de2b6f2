package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/cobra"

	"github.com/posturescan/posture-cli/internal/application"
	"github.com/posturescan/posture-cli/internal/domain/rating"
	sharedErrors "github.com/posturescan/posture-cli/internal/shared/errors"
)

var reportCmd = &cobra.Command{
	Use:   "report <domain>",
	Short: "Generate a posture report for a domain",
	Long: `Generate a report combining the stored scorecard and, when present,
the scored questionnaire for a domain. Formats: md, json, pdf.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		container, err := newContainer(ScanConfig{Offline: true})
		if err != nil {
			return err
		}

		data, err := buildReportData(cmd.Context(), container, currentUser, args[0])
		if err != nil {
			return err
		}

		switch format {
		case "md":
			content, err := generateMarkdownReport(data)
			if err != nil {
				return err
			}
			return writeReport(outPath, []byte(content), data.Domain, "md")
		case "json":
			content, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return err
			}
			return writeReport(outPath, content, data.Domain, "json")
		case "pdf":
			content, err := generatePDFReportBytes(data)
			if err != nil {
				return err
			}
			return writeReport(outPath, content, data.Domain, "pdf")
		default:
			return fmt.Errorf("unsupported format %q (expected md, json, or pdf)", format)
		}
	},
}

// CategoryRow is one category line of a report.
type CategoryRow struct {
	Category string `json:"category"`
	Score    string `json:"score"`
	Grade    string `json:"grade"`
	Stars    int    `json:"stars"`
	Scored   bool   `json:"scored"`
}

// ReportData holds everything the markdown, JSON, and PDF renderers need.
type ReportData struct {
	Domain          string        `json:"domain"`
	GeneratedAt     string        `json:"generated_at"`
	OverallScore    float64       `json:"overall_score"`
	OverallGrade    string        `json:"overall_grade"`
	Categories      []CategoryRow `json:"categories"`
	HasSignalData   bool          `json:"has_signal_data"`
	HasAssessment   bool          `json:"has_assessment"`
	Compliance      int           `json:"compliance,omitempty"`
	HealthStatus    string        `json:"health_status,omitempty"`
	TopIssues       []string      `json:"top_issues,omitempty"`
	TopStrengths    []string      `json:"top_strengths,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty"`
	FooterDate      string        `json:"-"`
}

func buildReportData(ctx context.Context, container *application.Container, user, target string) (ReportData, error) {
	data := ReportData{
		Domain:     target,
		FooterDate: time.Now().Format("2006-01-02"),
	}

	scorecard, err := container.ScorecardRepo.FindByDomain(ctx, target)
	if err != nil {
		if !errors.Is(err, sharedErrors.ErrScorecardNotFound) {
			return data, err
		}
	} else {
		data.HasSignalData = !scorecard.Empty()
		data.GeneratedAt = scorecard.GeneratedAt().Format("2006-01-02 15:04")
		data.OverallScore = scorecard.OverallScore()
		data.OverallGrade = scorecard.OverallGrade()
		for _, category := range rating.AllCategories {
			row := CategoryRow{Category: string(category), Score: "N/A", Grade: "-"}
			if cs, ok := scorecard.CategoryScore(category); ok {
				row.Score = fmt.Sprintf("%.1f", cs.Score)
				row.Grade = cs.Grade
				row.Stars = cs.Stars
				row.Scored = true
			}
			data.Categories = append(data.Categories, row)
		}
	}

	submission, err := container.Questionnaire.Get(ctx, user, target)
	if err != nil {
		if !errors.Is(err, sharedErrors.ErrSubmissionNotFound) {
			return data, err
		}
		return data, nil
	}
	if submission.Result != nil {
		data.HasAssessment = true
		data.Compliance = submission.Result.Percentage
		data.HealthStatus = submission.Result.HealthStatus
		for _, ca := range submission.Result.TopIssues {
			data.TopIssues = append(data.TopIssues, fmt.Sprintf("%s (%d%%)", ca.Name, ca.Percentage))
		}
		for _, ca := range submission.Result.TopStrengths {
			data.TopStrengths = append(data.TopStrengths, fmt.Sprintf("%s (%d%%)", ca.Name, ca.Percentage))
		}
		for _, code := range submission.Recommendations {
			data.Recommendations = append(data.Recommendations, string(code))
		}
	}
	return data, nil
}

var markdownReportTemplate = template.Must(template.New("markdown").Parse(`# Posture Report: {{.Domain}}

{{if .HasSignalData}}Generated: {{.GeneratedAt}}

## Overall

Score: **{{printf "%.1f" .OverallScore}} / 10** (grade {{.OverallGrade}})

## Categories

| Category | Score | Grade |
|----------|-------|-------|
{{range .Categories}}| {{.Category}} | {{.Score}} | {{.Grade}} |
{{end}}{{else}}No signal data is stored for this domain. Run ` + "`posture score {{.Domain}}`" + ` first.
{{end}}
{{if .HasAssessment}}## Self-Assessment

Compliance: **{{.Compliance}}%** ({{.HealthStatus}})
{{if .TopIssues}}
### Top issues
{{range .TopIssues}}- {{.}}
{{end}}{{end}}{{if .TopStrengths}}
### Top strengths
{{range .TopStrengths}}- {{.}}
{{end}}{{end}}{{if .Recommendations}}
### Recommended solutions
{{range .Recommendations}}- {{.}}
{{end}}{{end}}{{end}}
---
Report generated by posture on {{.FooterDate}}
`))

func generateMarkdownReport(data ReportData) (string, error) {
	var buf bytes.Buffer
	if err := markdownReportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render markdown report: %w", err)
	}
	return buf.String(), nil
}

func generatePDFReportBytes(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Posture Report: %s", data.Domain), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	if data.HasSignalData {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", data.GeneratedAt), "", 1, "", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Overall: %.1f / 10 (grade %s)", data.OverallScore, data.OverallGrade), "", 1, "", false, 0, "")
		pdf.Ln(5)

		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Categories", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, row := range data.Categories {
			pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s (%s)", row.Category, row.Score, row.Grade), "", 1, "", false, 0, "")
		}
		pdf.Ln(5)
	} else {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 6, "No signal data is stored for this domain.", "", 1, "", false, 0, "")
		pdf.Ln(5)
	}

	if data.HasAssessment {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Self-Assessment", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Compliance: %d%% (%s)", data.Compliance, data.HealthStatus), "", 1, "", false, 0, "")
		pdf.Ln(2)

		if len(data.TopIssues) > 0 {
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(0, 6, "Top issues", "", 1, "", false, 0, "")
			pdf.SetFont("Arial", "", 9)
			for _, issue := range data.TopIssues {
				pdf.MultiCell(0, 5, fmt.Sprintf("- %s", issue), "", "", false)
			}
			pdf.Ln(2)
		}
		if len(data.Recommendations) > 0 {
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(0, 6, "Recommended solutions", "", 1, "", false, 0, "")
			pdf.SetFont("Arial", "", 9)
			for _, rec := range data.Recommendations {
				pdf.MultiCell(0, 5, fmt.Sprintf("- %s", rec), "", "", false)
			}
		}
	}

	pdf.SetFont("Arial", "I", 8)
	pdf.Ln(5)
	pdf.CellFormat(0, 6, fmt.Sprintf("Report generated by posture on %s", data.FooterDate), "", 1, "", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeReport(outPath string, content []byte, target, ext string) error {
	if outPath == "" {
		outPath = fmt.Sprintf("%s-posture-report.%s", strings.ReplaceAll(target, ".", "_"), ext)
	}
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("%s Report written to %s\n", colorSuccess("✓"), outPath)
	return nil
}

func init() {
	reportCmd.Flags().String("format", "md", "Output format: md|json|pdf")
	reportCmd.Flags().String("out", "", "Output file (default <domain>-posture-report.<ext>)")
}
