// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"path/filepath"
	"time"
)

// LogFilePath builds the path of a session log file inside logsDir.
func LogFilePath(logsDir, name string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", name, sessionStart.Format("20060102_150405")),
	)
}
