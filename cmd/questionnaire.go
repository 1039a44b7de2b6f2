package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	domain "github.com/posturescan/posture-cli/internal/domain/questionnaire"
	sharedErrors "github.com/posturescan/posture-cli/internal/shared/errors"
)

var questionnaireCmd = &cobra.Command{
	Use:     "questionnaire",
	Aliases: []string{"q"},
	Short:   "Answer and score the security self-assessment",
}

var questionnaireQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCATEGORY\tQUESTION")
		for _, q := range domain.Questions() {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", q.ID, q.Category, q.Text)
		}
		return tw.Flush()
	},
}

var questionnaireAnswerCmd = &cobra.Command{
	Use:   "answer <domain> <question-id> <value>",
	Short: "Record one answer (0 = no, 5 = partially, 10 = yes)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		questionID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("question id must be a number: %s", args[1])
		}
		value, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("answer value must be a number: %s", args[2])
		}

		container, err := newContainer(ScanConfig{Offline: true})
		if err != nil {
			return err
		}
		submission, err := container.Questionnaire.Answer(cmd.Context(), currentUser, args[0], questionID, domain.AnswerValue(value))
		if err != nil {
			return err
		}

		answered := len(submission.Answers)
		fmt.Printf("%s Recorded answer for question %d (%d/%d answered)\n",
			colorSuccess("✓"), questionID, answered, domain.QuestionCount)
		if remaining := domain.QuestionCount - answered; remaining > 0 {
			fmt.Printf("%s %d questions remaining before scoring\n", colorInfo("→"), remaining)
		}
		return nil
	},
}

var questionnaireShowCmd = &cobra.Command{
	Use:   "show <domain>",
	Short: "Show the current submission state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := newContainer(ScanConfig{Offline: true})
		if err != nil {
			return err
		}
		submission, err := container.Questionnaire.Get(cmd.Context(), currentUser, args[0])
		if err != nil {
			if errors.Is(err, sharedErrors.ErrSubmissionNotFound) {
				fmt.Printf("No submission for %s yet. Use 'posture questionnaire answer' to start.\n", args[0])
				return nil
			}
			return err
		}

		fmt.Printf("Submission for %s by %s (%d/%d answered)\n\n",
			submission.Domain, submission.User, len(submission.Answers), domain.QuestionCount)

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tANSWER\tQUESTION")
		for _, q := range domain.Questions() {
			answer := "-"
			if v, ok := submission.Answers[q.ID]; ok {
				answer = answerLabel(v)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\n", q.ID, answer, q.Text)
		}
		tw.Flush()

		if submission.Result != nil {
			printResult(submission)
		}
		return nil
	},
}

var questionnaireScoreCmd = &cobra.Command{
	Use:   "score <domain>",
	Short: "Score a completed questionnaire",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := newContainer(ScanConfig{Offline: true})
		if err != nil {
			return err
		}
		submission, err := container.Questionnaire.Score(cmd.Context(), currentUser, args[0])
		if err != nil {
			if errors.Is(err, sharedErrors.ErrQuestionnaireIncomplete) {
				fmt.Printf("%s %v\n", colorWarn("!"), err)
				return fmt.Errorf("answer the remaining questions first")
			}
			return err
		}
		printResult(submission)
		return nil
	},
}

var questionnaireClearCmd = &cobra.Command{
	Use:   "clear <domain>",
	Short: "Clear the stored submission for a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := newContainer(ScanConfig{Offline: true})
		if err != nil {
			return err
		}
		if err := container.Questionnaire.Clear(cmd.Context(), currentUser, args[0]); err != nil {
			return err
		}
		fmt.Printf("%s Cleared submission for %s\n", colorSuccess("✓"), args[0])
		return nil
	},
}

func printResult(submission *domain.Submission) {
	result := submission.Result
	if result == nil {
		return
	}

	fmt.Printf("\nCompliance: %d%% (%s, raw %d/%d)\n\n",
		result.Percentage, formatHealthWithColor(result.HealthStatus),
		result.RawTotal, domain.MaxRawTotal)

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCOMPLIANCE")
	for _, ca := range result.Breakdown {
		fmt.Fprintf(tw, "%s\t%d%%\n", ca.Name, ca.Percentage)
	}
	tw.Flush()

	if len(result.TopIssues) > 0 {
		fmt.Printf("\n%s Top issues:\n", colorError("!"))
		for _, ca := range result.TopIssues {
			fmt.Printf("  %s (%d%%)\n", ca.Name, ca.Percentage)
		}
	}
	if len(result.TopStrengths) > 0 {
		fmt.Printf("\n%s Top strengths:\n", colorSuccess("✓"))
		for _, ca := range result.TopStrengths {
			fmt.Printf("  %s (%d%%)\n", ca.Name, ca.Percentage)
		}
	}
	if len(submission.Recommendations) > 0 {
		fmt.Printf("\n%s Recommended solutions:\n", colorInfo("→"))
		for _, code := range submission.Recommendations {
			fmt.Printf("  %s\n", code)
		}
	}
}

func answerLabel(v domain.AnswerValue) string {
	switch v {
	case domain.AnswerYes:
		return colorSuccess("yes")
	case domain.AnswerPartially:
		return colorWarn("partially")
	case domain.AnswerNo:
		return colorError("no")
	default:
		return strconv.Itoa(int(v))
	}
}

func init() {
	questionnaireCmd.AddCommand(questionnaireQuestionsCmd)
	questionnaireCmd.AddCommand(questionnaireAnswerCmd)
	questionnaireCmd.AddCommand(questionnaireShowCmd)
	questionnaireCmd.AddCommand(questionnaireScoreCmd)
	questionnaireCmd.AddCommand(questionnaireClearCmd)
}
