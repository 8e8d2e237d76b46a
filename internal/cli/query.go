package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/avireddy0/XERReader/internal/cli/output"
	"github.com/avireddy0/XERReader/internal/queryengine"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <file> <sql>",
		Short: "Run a SQL query over a parsed schedule's tasks and relationships",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, _, err := loadAndSchedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			eng, err := queryengine.Open(ctx, sched)
			if err != nil {
				return err
			}
			defer eng.Close()

			rows, err := eng.Query(ctx, args[1])
			if err != nil {
				return fmt.Errorf("query: %w", err)
			}

			return renderRows(GetRenderer(ctx), rows)
		},
	}
}

func renderRows(r *output.Renderer, rows []queryengine.Row) error {
	if r.Mode() == output.ModeJSON {
		return r.JSON(rows)
	}
	if len(rows) == 0 {
		r.Success("(0 rows)")
		return nil
	}

	headers := make([]string, 0, len(rows[0]))
	for col := range rows[0] {
		headers = append(headers, col)
	}
	sort.Strings(headers)

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i] = fmt.Sprintf("%v", row[h])
		}
		tableRows = append(tableRows, cells)
	}
	return r.Table(headers, tableRows)
}
