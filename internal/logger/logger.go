package logger

import (
	"fmt"
	"log"
	"os"
)

var logFile *os.File

// Init initializes the logger. With an empty path logs go to stderr,
// otherwise they are appended to the given file.
func Init(path string) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if path == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f
	log.SetOutput(logFile)
	return nil
}

// Close closes the log file if one was opened
func Close() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}
