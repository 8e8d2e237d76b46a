package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/avireddy0/XERReader/internal/cpm"
	"github.com/avireddy0/XERReader/internal/format"
	"github.com/avireddy0/XERReader/pkg/schedule"
)

// loadAndSchedule reads path, parses it into a Schedule (via
// internal/format's auto-detection), and runs the CPM engine over it.
// Within-document anomalies are non-fatal and are logged through ctx's
// slog.Logger rather than returned as an error.
func loadAndSchedule(ctx context.Context, path string) (*schedule.Schedule, []schedule.Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	sched, diags, err := format.Parse(data)
	if err != nil {
		return nil, diags, err
	}

	cpmDiags := cpm.Run(sched)
	diags = append(diags, cpmDiags...)

	logger := GetLogger(ctx)
	for _, d := range diags {
		logger.LogAttrs(ctx, slog.LevelWarn, d.String(), slog.String("file", path))
	}

	return sched, diags, nil
}
