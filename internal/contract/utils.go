package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Potential label constants.
const (
	ExceptionalValue = "Exceptional" // Top band, rare
	StrongValue      = "Strong"      // Clear high-pay potential
	ModerateValue    = "Moderate"    // Mixed signals
	LimitedValue     = "Limited"     // Weak or penalized profile
)

// Color variables for console output.
var (
	ExceptionalColor = color.New(color.FgGreen, color.Bold) // exceptionalColor marks the top band.
	StrongColor      = color.New(color.FgCyan, color.Bold)  // strongColor marks solid potential.
	ModerateColor    = color.New(color.FgYellow)            // moderateColor represents mixed signals, not bold.
	LimitedColor     = color.New(color.FgRed)               // limitedColor marks weak or penalized profiles.
)

// GetPlainLabel returns a plain text label for a final HPPS value in [0,1].
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 0.8:
		return ExceptionalValue
	case score >= 0.6:
		return StrongValue
	case score >= 0.4:
		return ModerateValue
	default:
		return LimitedValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case ExceptionalValue:
		return ExceptionalColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Limited"
		return LimitedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for score storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".hpps_scores.db"
	}
	return filepath.Join(homeDir, ".hpps_scores.db")
}

// TruncateName truncates a candidate name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both the "..."
// and at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
