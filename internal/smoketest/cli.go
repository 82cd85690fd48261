package smoketest

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/captain/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "smoke_test_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the smoke test tool.
func ShowHelp() {
	os.Stdout.WriteString(`Captain Smoke Test
==================

Drives one schedule-image upload through a running team-captain agent and
verifies the orchestration result.

Usage:
  go run cmd/smoke-test/main.go [options]

Options:
  -url string
        Base URL of the team-captain agent (default "http://localhost:8000")
  -team int
        Team id to upload for (default 42)
  -file string
        Schedule image to upload (default: a synthetic image)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for test output (default: smoke_test_TIMESTAMP.log)
  -verbose
        Print the full orchestration result
  -help
        Show this help message

Examples:
  # Test a local agent
  go run cmd/smoke-test/main.go

  # Test with a real schedule photo
  go run cmd/smoke-test/main.go -file october.png -team 7

  # Test a deployed agent with full output
  go run cmd/smoke-test/main.go -url http://team-captain-agent:8000 -verbose
`)
}
