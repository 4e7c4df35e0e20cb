package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	timeColor    = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func stamp() string {
	return time.Now().Format("15:04:05")
}

// Info logs a general message (blue).
func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", timeColor.Sprintf("[%s]", stamp()), infoColor.Sprintf(format, args...))
}

// Success logs a success (green).
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", timeColor.Sprintf("[%s]", stamp()), successColor.Sprintf("✓ "+format, args...))
}

// Warning logs a warning (yellow).
func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", timeColor.Sprintf("[%s]", stamp()), warnColor.Sprintf("⚠ "+format, args...))
}

// Error logs an error (red).
func Error(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", timeColor.Sprintf("[%s]", stamp()), errorColor.Sprintf("✗ "+format, args...))
}

// Request logs a completed HTTP request with its status and duration.
func Request(requestID, method, path string, statusCode int, duration time.Duration) {
	statusColor := successColor
	switch {
	case statusCode >= 500:
		statusColor = errorColor
	case statusCode >= 400:
		statusColor = warnColor
	}

	durationStr := ""
	if duration < time.Millisecond {
		durationStr = fmt.Sprintf("%dµs", duration.Microseconds())
	} else if duration < time.Second {
		durationStr = fmt.Sprintf("%dms", duration.Milliseconds())
	} else {
		durationStr = fmt.Sprintf("%.2fs", duration.Seconds())
	}

	fmt.Printf("%s %s %-6s %-40s %s %s\n",
		timeColor.Sprintf("[%s]", stamp()),
		timeColor.Sprintf("[%s]", requestID),
		method, path,
		statusColor.Sprintf("[%d]", statusCode),
		timeColor.Sprintf("(%s)", durationStr))
}
