package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/avireddy0/XERReader/internal/format"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an XER or MS-Project export and print diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			sched, diags, err := format.Parse(data)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			r := GetRenderer(ctx)
			r.Success("parsed %d projects, %d tasks, %d relationships",
				len(sched.Projects), len(sched.Tasks), len(sched.Relationships))

			logger := GetLogger(ctx)
			for _, d := range diags {
				r.Warning("%s", d.String())
				logger.LogAttrs(ctx, slog.LevelWarn, d.String(), slog.String("file", args[0]))
			}
			return nil
		},
	}
}
