package git

// GitExecutor defines the git operations autopush needs.
// This interface allows for mocking git operations in tests.
type GitExecutor interface {
	// AddAll stages every change in the working tree (git add .)
	AddAll() error

	// StatusPorcelain returns the raw output of git status --porcelain
	StatusPorcelain() (string, error)

	// Commit creates a git commit with the specified message and author
	Commit(message, user, email string) error

	// Push pushes commits to the default remote
	Push() error

	// WorkDir returns the working directory of the git repository
	WorkDir() string
}
