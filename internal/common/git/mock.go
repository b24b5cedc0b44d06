package git

// MockGitRunner implements GitExecutor for testing.
// Each method can be configured with a custom function to control behavior.
// Calls records the name of every method invoked, in order.
type MockGitRunner struct {
	AddAllFunc          func() error
	StatusPorcelainFunc func() (string, error)
	CommitFunc          func(message, user, email string) error
	PushFunc            func() error
	Calls               []string
	workDir             string
}

// NewMockGitRunner creates a new MockGitRunner with the specified working directory
func NewMockGitRunner(workDir string) *MockGitRunner {
	return &MockGitRunner{
		workDir: workDir,
	}
}

// AddAll stages every change in the working tree
func (m *MockGitRunner) AddAll() error {
	m.Calls = append(m.Calls, "add")
	if m.AddAllFunc != nil {
		return m.AddAllFunc()
	}
	return nil
}

// StatusPorcelain returns the raw output of git status --porcelain
func (m *MockGitRunner) StatusPorcelain() (string, error) {
	m.Calls = append(m.Calls, "status")
	if m.StatusPorcelainFunc != nil {
		return m.StatusPorcelainFunc()
	}
	return "", nil
}

// Commit creates a git commit with the specified message and author
func (m *MockGitRunner) Commit(message, user, email string) error {
	m.Calls = append(m.Calls, "commit")
	if m.CommitFunc != nil {
		return m.CommitFunc(message, user, email)
	}
	return nil
}

// Push pushes commits to the default remote
func (m *MockGitRunner) Push() error {
	m.Calls = append(m.Calls, "push")
	if m.PushFunc != nil {
		return m.PushFunc()
	}
	return nil
}

// WorkDir returns the working directory of the git repository
func (m *MockGitRunner) WorkDir() string {
	return m.workDir
}

// Ensure MockGitRunner implements GitExecutor interface
var _ GitExecutor = (*MockGitRunner)(nil)
