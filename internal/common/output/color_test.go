package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestColorOutputMatchesStatusType(t *testing.T) {
	// Ensure colors are enabled for this test
	color.NoColor = false
	defer NoColor()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// Map of status types to their expected ANSI color codes
	statusColorCodes := map[string]string{
		"Added":    "\x1b[32m", // Green
		"Modified": "\x1b[33m", // Yellow
		"Deleted":  "\x1b[31m", // Red
		"Renamed":  "\x1b[36m", // Cyan
	}

	// Generator for known status types
	statusGen := gen.OneConstOf("Added", "Modified", "Deleted", "Renamed")

	properties.Property("FormatStatus contains correct ANSI code for status type", prop.ForAll(
		func(status string) bool {
			formatted := FormatStatus(status)
			expectedCode := statusColorCodes[status]
			return strings.Contains(formatted, expectedCode)
		},
		statusGen,
	))

	properties.Property("StatusColor returns non-nil color for known status", prop.ForAll(
		func(status string) bool {
			c := StatusColor(status)
			return c != nil
		},
		statusGen,
	))

	properties.Property("FormatStatus output contains the status text", prop.ForAll(
		func(status string) bool {
			formatted := FormatStatus(status)
			return strings.Contains(formatted, status)
		},
		statusGen,
	))

	properties.TestingRun(t)
}

func TestNoColorFlagDisablesANSICodes(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// Generator for known status types
	statusGen := gen.OneConstOf("Added", "Modified", "Deleted", "Renamed", "Untracked")

	// Generator for arbitrary strings to test with Sprint/Sprintf
	stringGen := gen.AnyString()

	properties.Property("FormatStatus contains no ANSI codes when NoColor is set", prop.ForAll(
		func(status string) bool {
			NoColor()
			defer func() { color.NoColor = false }()

			formatted := FormatStatus(status)
			// ANSI escape sequences start with \x1b[ or \033[
			return !strings.Contains(formatted, "\x1b[") && !strings.Contains(formatted, "\033[")
		},
		statusGen,
	))

	properties.Property("Sprintf contains no ANSI codes when NoColor is set", prop.ForAll(
		func(text string) bool {
			NoColor()
			defer func() { color.NoColor = false }()

			// Test with various color types
			colors := []*color.Color{Added, Modified, Deleted, Renamed, Success, Error, Info, Warning}
			for _, c := range colors {
				result := Sprintf(c, "%s", text)
				if strings.Contains(result, "\x1b[") || strings.Contains(result, "\033[") {
					return false
				}
			}
			return true
		},
		stringGen,
	))

	properties.Property("FormatChange contains no ANSI codes when NoColor is set", prop.ForAll(
		func(label, path string) bool {
			NoColor()
			defer func() { color.NoColor = false }()

			formatted := FormatChange(label, path)
			return !strings.Contains(formatted, "\x1b[") && !strings.Contains(formatted, "\033[")
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestPrintHelpersWriteToConfiguredStreams(t *testing.T) {
	NoColor()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = stdout, stderr
	defer func() { Stdout, Stderr = oldOut, oldErr }()

	PrintSuccess("pushed %d commit", 1)
	PrintInfo("staging")
	PrintError("Error running command: %s", "git push")

	if got := stdout.String(); got != "✓ pushed 1 commit\n→ staging\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := stderr.String(); got != "✗ Error running command: git push\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestFormatChange(t *testing.T) {
	NoColor()

	if got := FormatChange("Modified", "README.md"); got != "[Modified] README.md" {
		t.Errorf("FormatChange() = %q", got)
	}
}

func TestSetQuietSuppressesStdoutOnly(t *testing.T) {
	NoColor()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = stdout, stderr
	defer func() { Stdout, Stderr = oldOut, oldErr }()

	SetQuiet(false)
	PrintWarning("kept")
	if !strings.Contains(stdout.String(), "⚠ kept") {
		t.Errorf("SetQuiet(false) should keep stdout, got %q", stdout.String())
	}

	SetQuiet(true)
	PrintInfo("hidden")
	PrintWarning("hidden")
	Banner(Success, "hidden")
	PrintError("still shown")

	if strings.Contains(stdout.String(), "hidden") {
		t.Errorf("quiet mode leaked to stdout: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "still shown") {
		t.Errorf("errors must survive quiet mode, got %q", stderr.String())
	}
}
