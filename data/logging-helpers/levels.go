package logginghelpers

import "log/slog"

const (
	// Level Debug -4
	LevelReportIO slog.Level = -2
	// Level Info 0
	// Level Warn 4
	// Level Error 8
	LevelBrokenData slog.Level = 12
)

func levelName(l slog.Level) string {
	switch l {
	case LevelReportIO:
		return "IO"
	case LevelBrokenData:
		return "BROKEN"
	default:
		return l.String()
	}
}
