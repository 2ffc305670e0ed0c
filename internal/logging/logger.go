package logging

import (
	"log/slog"
	"os"
)

// Setup installs the boot-time slog logger: JSON to stdout at Info. Once the
// database is up, main swaps in a MultiHandler that adds the system_logs sink.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
