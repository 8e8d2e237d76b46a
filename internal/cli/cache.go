package cli

import (
	"github.com/spf13/cobra"

	"github.com/avireddy0/XERReader/internal/store"
)

func newCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache <file>",
		Short: "Parse a file and persist its schedule to the configured store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, diags, err := loadAndSchedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			r := GetRenderer(ctx)

			for _, d := range diags {
				r.Warning("%s", d.String())
			}

			s, err := store.Open(ctx, cfg.Store)
			if err != nil {
				return err
			}
			if s == nil {
				r.Warning("store.type is \"none\"; nothing was cached")
				return nil
			}
			defer s.Close()

			id, err := s.Save(ctx, sched)
			if err != nil {
				return err
			}

			r.Success("cached schedule %s (%d tasks)", id, len(sched.Tasks))
			return nil
		},
	}
}
