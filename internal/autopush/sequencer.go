package autopush

import (
	"strings"

	"github.com/obentoo/autopush/internal/common/config"
	"github.com/obentoo/autopush/internal/common/git"
	"github.com/obentoo/autopush/internal/common/logger"
)

// Options control the commit step
type Options struct {
	Message string // empty selects config.DefaultCommitMessage
	User    string // author name, used only together with Email
	Email   string
}

// Result describes what a run did
type Result struct {
	Dirty     bool              // status was non-empty after trimming
	Committed bool              // git commit succeeded
	Pushed    bool              // git push succeeded
	Entries   []git.StatusEntry // parsed porcelain status
}

// Sequencer drives the stage, status, commit and push steps
type Sequencer struct {
	executor git.GitExecutor
	opts     Options
}

// New creates a Sequencer that runs git through executor
func New(executor git.GitExecutor, opts Options) *Sequencer {
	if strings.TrimSpace(opts.Message) == "" {
		opts.Message = config.DefaultCommitMessage
	}
	return &Sequencer{
		executor: executor,
		opts:     opts,
	}
}

// NewFromConfig creates a Sequencer using the message and author from cfg
func NewFromConfig(executor git.GitExecutor, cfg *config.Config) *Sequencer {
	user, email := cfg.Author()
	return New(executor, Options{
		Message: cfg.Commit.Message,
		User:    user,
		Email:   email,
	})
}

// Message returns the commit message that will be used
func (s *Sequencer) Message() string {
	return s.opts.Message
}

// StageAll adds every working-tree change to the index
func (s *Sequencer) StageAll() error {
	if err := s.executor.AddAll(); err != nil {
		return commandError(CmdAdd, err)
	}
	return nil
}

// Status returns the porcelain status with surrounding whitespace removed
func (s *Sequencer) Status() (string, error) {
	out, err := s.rawStatus()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// rawStatus keeps the leading column of the first porcelain line intact
func (s *Sequencer) rawStatus() (string, error) {
	out, err := s.executor.StatusPorcelain()
	if err != nil {
		return "", commandError(CmdStatus, err)
	}
	return out, nil
}

// CommitIfDirty commits and pushes when status is non-empty.
// Push is never attempted after a failed commit.
func (s *Sequencer) CommitIfDirty(status string) (*Result, error) {
	result := &Result{}

	if strings.TrimSpace(status) == "" {
		return result, nil
	}
	result.Dirty = true

	logger.Info("💾 Committing changes...")
	if err := s.executor.Commit(s.opts.Message, s.opts.User, s.opts.Email); err != nil {
		return result, commandError(CmdCommit, err)
	}
	result.Committed = true

	logger.Info("⬆️  Pushing to remote...")
	if err := s.executor.Push(); err != nil {
		return result, commandError(CmdPush, err)
	}
	result.Pushed = true

	return result, nil
}

// Run stages, inspects and, when there are changes, commits and pushes.
// The first failure aborts the sequence.
func (s *Sequencer) Run() (*Result, error) {
	logger.Debug("working directory: %q", s.executor.WorkDir())

	logger.Info("📦 Staging changes...")
	if err := s.StageAll(); err != nil {
		return &Result{}, err
	}

	raw, err := s.rawStatus()
	if err != nil {
		return &Result{}, err
	}
	status := strings.TrimSpace(raw)
	logger.Debug("status:\n%s", status)

	result, err := s.CommitIfDirty(status)
	result.Entries = git.ParseStatusOutput(raw)
	return result, err
}

// DryRun reports the changes a Run would commit without touching the
// index, creating a commit or pushing.
func (s *Sequencer) DryRun() (*Result, error) {
	raw, err := s.rawStatus()
	if err != nil {
		return &Result{}, err
	}

	return &Result{
		Dirty:   strings.TrimSpace(raw) != "",
		Entries: git.ParseStatusOutput(raw),
	}, nil
}
