// Package autopush stages, commits and pushes a working tree in one step.
//
// The sequence is strictly linear:
//
//	git add .
//	git status --porcelain
//	git commit -m <message>   (only when the status is non-empty)
//	git push                  (only after a successful commit)
//
// The first failing command aborts the run with a *CommandError; nothing is
// retried or rolled back. A status that is empty after trimming whitespace
// means there is nothing to do.
//
// Usage:
//
//	seq := autopush.New(git.NewGitRunner(dir), autopush.Options{})
//	result, err := seq.Run()
package autopush
