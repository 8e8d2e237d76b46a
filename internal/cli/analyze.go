package cli

import (
	"github.com/spf13/cobra"

	"github.com/avireddy0/XERReader/internal/analyzer"
	"github.com/avireddy0/XERReader/internal/cli/output"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "Parse, run CPM, and print the full analysis report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, diags, err := loadAndSchedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cfg := GetConfig(cmd.Context())
			report := analyzer.New(sched).BuildReport(cfg.Thresholds.FloatDays, "")

			r := GetRenderer(cmd.Context())
			for _, d := range diags {
				r.Warning("%s", d.String())
			}
			return renderReport(r, report)
		},
	}
}

// renderReport prints a Report either as the DCMA table (text/markdown
// modes) or as a single JSON document (json mode).
func renderReport(r *output.Renderer, report analyzer.Report) error {
	if r.Mode() == output.ModeJSON {
		return r.JSON(report)
	}

	headers := []string{"Check", "Threshold", "Actual", "Result"}
	rows := make([][]string, 0, len(report.DCMA.Checks))
	for _, c := range report.DCMA.Checks {
		result := "PASS"
		if c.NotComputable {
			result = "N/A"
		} else if !c.Passed {
			result = "FAIL"
		}
		rows = append(rows, []string{c.Name, c.Threshold, formatFloat(c.ActualValue), result})
	}
	if err := r.Table(headers, rows); err != nil {
		return err
	}

	r.Success("overall DCMA score: %.1f%%", report.DCMA.OverallScore)
	r.Success("critical path: %d tasks, %d days",
		len(report.CriticalPath.Tasks), report.CriticalPath.TotalDurationDays)
	return nil
}

func formatFloat(v float64) string {
	return trimTrailingZeros(v)
}
