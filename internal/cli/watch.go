package cli

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/avireddy0/XERReader/internal/analyzer"
	"github.com/avireddy0/XERReader/internal/api"
)

func newWatchCmd() *cobra.Command {
	var serve bool
	var port int

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse and re-analyze a file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			path := args[0]
			r := GetRenderer(ctx)

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("creating watcher: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("watching %s: %w", path, err)
			}

			eg, egctx := errgroup.WithContext(ctx)

			var lastScore float64
			var lastCriticalCount int
			reanalyze := func() error {
				sched, diags, err := loadAndSchedule(egctx, path)
				if err != nil {
					r.Bad("reparse failed: %v", err)
					return nil
				}
				for _, d := range diags {
					r.Warning("%s", d.String())
				}

				report := analyzer.New(sched).BuildReport(analyzer.DefaultFloatThresholdDays, "")
				score := report.DCMA.OverallScore
				criticalCount := len(report.CriticalPath.Tasks)

				r.Success("DCMA score: %.1f%% (Δ %.1f) — critical path: %d tasks (Δ %d)",
					score, score-lastScore, criticalCount, criticalCount-lastCriticalCount)
				lastScore, lastCriticalCount = score, criticalCount
				return nil
			}

			if err := reanalyze(); err != nil {
				return err
			}

			if serve {
				sched, _, err := loadAndSchedule(ctx, path)
				if err != nil {
					return err
				}
				srv := &http.Server{
					Addr:         fmt.Sprintf(":%d", port),
					Handler:      api.Router(api.NewHandlers(sched)),
					ReadTimeout:  10 * time.Second,
					WriteTimeout: 10 * time.Second,
				}
				errCh := serveInBackground(egctx, srv)
				eg.Go(func() error {
					select {
					case err := <-errCh:
						if err != nil && err != http.ErrServerClosed {
							return err
						}
						return nil
					case <-egctx.Done():
						return nil
					}
				})
				r.Success("also serving on :%d", port)
			}

			eg.Go(func() error {
				for {
					select {
					case <-egctx.Done():
						return nil
					case event, ok := <-watcher.Events:
						if !ok {
							return nil
						}
						if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
							continue
						}
						if err := reanalyze(); err != nil {
							return err
						}
					case err, ok := <-watcher.Errors:
						if !ok {
							return nil
						}
						return err
					}
				}
			})

			return eg.Wait()
		},
	}

	cmd.Flags().BoolVar(&serve, "serve", false, "also run the HTTP API while watching")
	cmd.Flags().IntVar(&port, "port", 8080, "HTTP listen port when --serve is set")
	return cmd
}
