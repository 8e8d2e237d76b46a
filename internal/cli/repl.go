package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/avireddy0/XERReader/internal/queryengine"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl <file>",
		Short: "Interactive session for inspecting a parsed schedule",
		Args:  cobra.ExactArgs(1),
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

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "xerreader> ",
				InterruptPrompt: "^C",
				EOFPrompt:       ".quit",
			})
			if err != nil {
				return fmt.Errorf("initializing repl: %w", err)
			}
			defer rl.Close()

			r := GetRenderer(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "xerreader repl — %d tasks loaded. SQL runs against tasks/relationships/projects; .quit to exit.\n", len(sched.Tasks))

			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if errors.Is(err, io.EOF) {
					return nil
				}

				line = strings.TrimSpace(line)
				switch {
				case line == "":
					continue
				case line == ".quit" || line == ".exit":
					return nil
				}

				rows, err := eng.Query(ctx, line)
				if err != nil {
					r.Bad("%v", err)
					continue
				}
				if err := renderRows(r, rows); err != nil {
					r.Bad("%v", err)
				}
			}
		},
	}
}
