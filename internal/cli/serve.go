package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/avireddy0/XERReader/internal/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Start the read-only HTTP API over a parsed schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, diags, err := loadAndSchedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			r := GetRenderer(cmd.Context())
			for _, d := range diags {
				r.Warning("%s", d.String())
			}

			handlers := api.NewHandlers(sched)
			srv := &http.Server{
				Addr:         fmt.Sprintf(":%d", port),
				Handler:      api.Router(handlers),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			r.Success("serving %d tasks on :%d", len(sched.Tasks), port)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "HTTP listen port")
	return cmd
}

// serveInBackground starts an HTTP server, shuts it down gracefully when
// ctx is cancelled, and returns a channel that receives ListenAndServe's
// result. Used by `watch --serve` to run the watcher and the API
// concurrently.
func serveInBackground(ctx context.Context, srv *http.Server) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return errCh
}
