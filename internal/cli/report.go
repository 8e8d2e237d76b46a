package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/avireddy0/XERReader/internal/analyzer"
	"github.com/avireddy0/XERReader/internal/cli/output"
)

func newReportCmd() *cobra.Command {
	var groupBy string

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Analyze with optional grouping by an activity-code type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, diags, err := loadAndSchedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cfg := GetConfig(cmd.Context())
			report := analyzer.New(sched).BuildReport(cfg.Thresholds.FloatDays, groupBy)

			r := GetRenderer(cmd.Context())
			for _, d := range diags {
				r.Warning("%s", d.String())
			}
			if err := renderReport(r, report); err != nil {
				return err
			}
			if groupBy != "" {
				return renderGroupedBy(r, report.GroupedBy)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&groupBy, "group-by", "", "activity-code type ID to group the report by")
	return cmd
}

func renderGroupedBy(r *output.Renderer, grouped map[string][]string) error {
	if r.Mode() == output.ModeJSON {
		return r.JSON(grouped)
	}

	codes := make([]string, 0, len(grouped))
	for code := range grouped {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	headers := []string{"Activity Code", "Task Count"}
	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, []string{code, trimTrailingZeros(float64(len(grouped[code])))})
	}
	return r.Table(headers, rows)
}
