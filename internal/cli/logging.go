package cli

import (
	"log/slog"
	"os"
)

// setupLogging installs the process-wide slog handler. Default severity is
// warning so a normal run prints only the per-row skip diagnostics;
// --verbose opens debug, --quiet keeps errors only.
func setupLogging(opts *RootOptions) {
	level := slog.LevelWarn
	switch {
	case opts.Quiet:
		level = slog.LevelError
	case opts.Verbose:
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
