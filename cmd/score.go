package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/posturescan/posture-cli/internal/domain/rating"
)

var scoreCmd = &cobra.Command{
	Use:   "score <domain>",
	Short: "Rate a domain's security posture from signal data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain := strings.ToLower(strings.TrimSpace(args[0]))
		if domain == "" {
			return fmt.Errorf("domain is required")
		}

		cfg := resolveScanConfig(cmd)
		container, err := newContainer(cfg)
		if err != nil {
			return err
		}

		timeout := time.Duration(cfg.TimeoutSecs) * time.Second * 2
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		fmt.Printf("%s Scoring %s...\n", colorInfo("→"), domain)
		scorecard, err := container.Aggregator.ScoreDomain(ctx, domain)
		if err != nil {
			return err
		}
		if err := container.ScorecardRepo.Save(ctx, scorecard); err != nil {
			return fmt.Errorf("failed to persist scorecard: %w", err)
		}

		printScorecard(scorecard)
		return nil
	},
}

var scorecardCmd = &cobra.Command{
	Use:   "scorecard",
	Short: "Inspect stored scorecards",
}

var scorecardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scorecards",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := newContainer(ScanConfig{Offline: true})
		if err != nil {
			return err
		}
		scorecards, err := container.ScorecardRepo.FindAll(cmd.Context())
		if err != nil {
			return err
		}
		if len(scorecards) == 0 {
			fmt.Println("No scorecards stored yet. Run 'posture score <domain>' first.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DOMAIN\tOVERALL\tGRADE\tGENERATED")
		for _, sc := range scorecards {
			fmt.Fprintf(tw, "%s\t%.1f\t%s\t%s\n",
				sc.Domain(), sc.OverallScore(), sc.OverallGrade(),
				sc.GeneratedAt().Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	},
}

var scorecardShowCmd = &cobra.Command{
	Use:   "show <domain>",
	Short: "Show the stored scorecard for a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := newContainer(ScanConfig{Offline: true})
		if err != nil {
			return err
		}
		scorecard, err := container.ScorecardRepo.FindByDomain(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printScorecard(scorecard)
		return nil
	},
}

var scorecardDeleteCmd = &cobra.Command{
	Use:   "delete <domain>",
	Short: "Delete the stored scorecard for a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := newContainer(ScanConfig{Offline: true})
		if err != nil {
			return err
		}
		if err := container.ScorecardRepo.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("%s Deleted scorecard for %s\n", colorSuccess("✓"), args[0])
		return nil
	},
}

func printScorecard(scorecard *rating.Scorecard) {
	fmt.Printf("\nPosture scorecard for %s (generated %s)\n\n",
		scorecard.Domain(), scorecard.GeneratedAt().Format("2006-01-02 15:04"))

	if scorecard.Empty() {
		fmt.Printf("%s No signal data available for this domain.\n", colorWarn("!"))
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSCORE\tGRADE\tSTARS")
	for _, category := range rating.AllCategories {
		cs, ok := scorecard.CategoryScore(category)
		if !ok {
			fmt.Fprintf(tw, "%s\tN/A\t-\t-\n", category)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%s\t%s\n",
			category, cs.Score,
			formatGradeWithColor(cs.Grade, cs.Color),
			starBar(cs.Stars))
	}
	tw.Flush()

	fmt.Printf("\nOverall: %.1f (%s)\n", scorecard.OverallScore(), scorecard.OverallGrade())
}

func starBar(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func init() {
	addScanFlags(scoreCmd)
	scorecardCmd.AddCommand(scorecardListCmd)
	scorecardCmd.AddCommand(scorecardShowCmd)
	scorecardCmd.AddCommand(scorecardDeleteCmd)
}
