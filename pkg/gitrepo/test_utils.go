/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	goexec "github.com/voedger/defpred/pkg/goutils/exec"
	"github.com/voedger/defpred/pkg/goutils/filesu"
)

// TestRepo builds a throwaway git repository with a linear history
type TestRepo struct {
	t       *testing.T
	Dir     string
	commits int
	start   time.Time
}

// NewTestRepo skips the test if git is not available
func NewTestRepo(t *testing.T) *TestRepo {
	t.Helper()
	if _, err := exec.LookPath(gitBinary); err != nil {
		t.Skip("git is not available")
	}
	tr := &TestRepo{
		t:     t,
		Dir:   t.TempDir(),
		start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	tr.git("init", "--quiet", "--initial-branch=master")
	return tr
}

// Commit writes files (path -> content, empty content removes the file) and commits them with subject
func (tr *TestRepo) Commit(subject string, files map[string]string) {
	tr.t.Helper()
	for path, content := range files {
		full := filepath.Join(tr.Dir, filepath.FromSlash(path))
		if len(content) == 0 {
			require.NoError(tr.t, os.Remove(full))
			continue
		}
		require.NoError(tr.t, os.MkdirAll(filepath.Dir(full), filesu.FileMode_DefaultForDir))
		require.NoError(tr.t, os.WriteFile(full, []byte(content), filesu.FileMode_DefaultForFile))
	}
	tr.git("add", "--all")
	tr.commits++
	tr.git("commit", "--quiet", "--allow-empty", "-m", subject)
}

// Branch creates and checks out a new branch
func (tr *TestRepo) Branch(name string) {
	tr.t.Helper()
	tr.git("checkout", "--quiet", "-b", name)
}

func (tr *TestRepo) Checkout(name string) {
	tr.t.Helper()
	tr.git("checkout", "--quiet", name)
}

func (tr *TestRepo) Repository() IRepository {
	tr.t.Helper()
	repo, err := Open(tr.Dir, NewRetryConfig())
	require.NoError(tr.t, err)
	return repo
}

func (tr *TestRepo) git(args ...string) {
	tr.t.Helper()
	date := tr.start.Add(time.Duration(tr.commits) * time.Hour).Format(time.RFC3339)
	_, stderr, err := new(goexec.PipedExec).
		WithContext(context.Background()).
		Command(gitBinary, append([]string{"-c", "user.name=Tester", "-c", "user.email=tester@example.com", "-c", "commit.gpgsign=false"}, args...)...).
		WorkingDir(tr.Dir).
		Env("GIT_AUTHOR_DATE="+date, "GIT_COMMITTER_DATE="+date).
		RunToStrings()
	require.NoError(tr.t, err, fmt.Sprintf("git %v: %s", args, stderr))
}
