// Package logging sets up the process-wide slog loggers.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/wildsight/camtrap-go/internal/conf"
)

// Init configures the default slog logger: human-readable text on stderr,
// optionally duplicated as JSON into a rotating log file when enabled in
// the settings. Debug lowers the stderr level.
func Init(settings *conf.Settings) {
	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}

	handler := slog.Handler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if settings.Main.Log.Enabled {
		fileWriter := &lumberjack.Logger{
			Filename:   settings.Main.Log.Path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
		handler = &teeHandler{
			handlers: []slog.Handler{
				handler,
				slog.NewJSONHandler(fileWriter, &slog.HandlerOptions{Level: slog.LevelDebug}),
			},
		}
	}

	slog.SetDefault(slog.New(handler))
}

// InitForOutput is a test hook that routes text logs to w.
func InitForOutput(w io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, nil)))
}
