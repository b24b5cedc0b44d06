package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	// Status colors
	Added     = color.New(color.FgGreen)
	Modified  = color.New(color.FgYellow)
	Deleted   = color.New(color.FgRed)
	Renamed   = color.New(color.FgCyan)
	Untracked = color.New(color.FgMagenta)

	// Message colors
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)

	Path = color.New(color.FgBlue)
)

// Stdout and Stderr are the destinations for console messages.
// Tests swap them for buffers.
var (
	Stdout io.Writer = color.Output
	Stderr io.Writer = color.Error
)

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// SetQuiet discards everything except errors
func SetQuiet(quiet bool) {
	if quiet {
		Stdout = io.Discard
	}
}

// StatusColor returns the appropriate color for a git status label
func StatusColor(status string) *color.Color {
	switch status {
	case "Added":
		return Added
	case "Modified":
		return Modified
	case "Deleted":
		return Deleted
	case "Renamed":
		return Renamed
	case "Untracked":
		return Untracked
	default:
		return color.New(color.Reset)
	}
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Fprintf(Stdout, "✓ "+format+"\n", args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(Stderr, "✗ "+format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Fprintf(Stdout, "⚠ "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Fprintf(Stdout, "→ "+format+"\n", args...)
}

// Sprintf returns a colored string without printing
func Sprintf(c *color.Color, format string, args ...interface{}) string {
	return c.Sprintf(format, args...)
}

// Sprint returns a colored string without printing
func Sprint(c *color.Color, a ...interface{}) string {
	return c.Sprint(a...)
}

// FormatStatus formats a status label with appropriate color
func FormatStatus(status string) string {
	c := StatusColor(status)
	return c.Sprintf("[%s]", status)
}

// FormatChange formats one working-tree change as "[Label] path"
func FormatChange(label, path string) string {
	return FormatStatus(label) + " " + Path.Sprint(path)
}

// Banner prints a blank-line separated headline
func Banner(c *color.Color, text string) {
	fmt.Fprintln(Stdout)
	c.Fprintln(Stdout, text)
}
