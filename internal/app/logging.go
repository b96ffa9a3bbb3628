package app

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "life.log"
)

// LogPath is where SetupLogging writes when debug logging is on.
func LogPath() string { return filepath.Join(logDir, logFileName) }

// SetupLogging routes the standard logger to LogPath when debug is set and
// discards it otherwise, since the terminal owns stdout and stderr while the
// game runs. The returned file, if any, must be closed by the caller.
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
