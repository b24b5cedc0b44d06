package git

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/obentoo/autopush/internal/common/logger"
)

var (
	ErrGitCommand = errors.New("git command failed")
	ErrGitMissing = errors.New("git executable not found in PATH")
)

// GitRunner executes git commands in a specific working directory
type GitRunner struct {
	workDir string
}

// NewGitRunner creates a new GitRunner for the specified working directory.
// An empty workDir means the current directory of the process.
func NewGitRunner(workDir string) *GitRunner {
	return &GitRunner{
		workDir: workDir,
	}
}

// WorkDir returns the working directory of the GitRunner
func (g *GitRunner) WorkDir() string {
	return g.workDir
}

// runCommand executes a git command and returns stdout, stderr, and any error
func (g *GitRunner) runCommand(args ...string) (stdout, stderr string, err error) {
	if _, lookErr := exec.LookPath("git"); lookErr != nil {
		return "", "", errors.Join(ErrGitCommand, ErrGitMissing)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = g.workDir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	logger.Debug("running: git %s", strings.Join(args, " "))
	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if err != nil {
		// Keep git's own diagnostic; fall back to the exit status
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			detail = strings.TrimSpace(stdout)
		}
		if detail == "" {
			detail = err.Error()
		}
		err = errors.Join(ErrGitCommand, errors.New(detail))
	}

	return stdout, stderr, err
}

// StatusEntry represents a single entry from git status --porcelain
type StatusEntry struct {
	Status   string // A, M, D, R, ??
	FilePath string
}

// StatusPorcelain returns the raw output of git status --porcelain
func (g *GitRunner) StatusPorcelain() (string, error) {
	stdout, _, err := g.runCommand("status", "--porcelain")
	if err != nil {
		return "", err
	}
	return stdout, nil
}

// ParseStatusOutput parses git status --porcelain output into StatusEntry slice
func ParseStatusOutput(output string) []StatusEntry {
	var entries []StatusEntry

	lines := strings.Split(output, "\n")
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) < 4 {
			continue
		}

		// XY filename, X = index status, Y = worktree status
		status := strings.TrimSpace(line[:2])
		filePath := line[3:]
		if status == "" {
			continue
		}

		// R  old -> new
		if strings.HasPrefix(status, "R") || strings.HasPrefix(status, "C") {
			parts := strings.Split(filePath, " -> ")
			if len(parts) == 2 {
				filePath = parts[1]
			}
		}

		entries = append(entries, StatusEntry{
			Status:   status,
			FilePath: filePath,
		})
	}

	return entries
}

// StatusLabel maps a porcelain status code to a human readable label
func StatusLabel(status string) string {
	switch {
	case status == "??":
		return "Untracked"
	case strings.HasPrefix(status, "A"):
		return "Added"
	case strings.HasPrefix(status, "D"), strings.HasSuffix(status, "D"):
		return "Deleted"
	case strings.HasPrefix(status, "R"):
		return "Renamed"
	case strings.Contains(status, "M"):
		return "Modified"
	default:
		return status
	}
}

// AddAll stages every change in the working tree
func (g *GitRunner) AddAll() error {
	_, _, err := g.runCommand("add", ".")
	return err
}

// Commit creates a git commit with the specified message and author
func (g *GitRunner) Commit(message, user, email string) error {
	args := []string{"commit", "-m", message}

	// Set author if provided
	if user != "" && email != "" {
		author := user + " <" + email + ">"
		args = append(args, "--author", author)
	}

	_, _, err := g.runCommand(args...)
	return err
}

// Push pushes commits to the default remote
func (g *GitRunner) Push() error {
	_, _, err := g.runCommand("push")
	return err
}

// Ensure GitRunner implements GitExecutor interface
var _ GitExecutor = (*GitRunner)(nil)
