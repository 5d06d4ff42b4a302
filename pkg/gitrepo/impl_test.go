/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommits(t *testing.T) {
	require := require.New(t)
	tr := NewTestRepo(t)

	tr.Commit("initial", map[string]string{"src/a.c": "int a;\n", "README.md": "# demo\n"})
	tr.Commit("fix: crash in a", map[string]string{"src/a.c": "int a = 0;\n"})
	tr.Branch("feature")
	tr.Commit("add b", map[string]string{"src/b.c": "int b;\nint c;\n"})
	tr.Checkout("master")

	repo := tr.Repository()
	commits, err := repo.Commits(context.Background())
	require.NoError(err)
	require.Len(commits, 3, "commits of all branches are read")

	require.Equal("initial", commits[0].Subject)
	require.Equal("Tester", commits[0].Author)
	require.ElementsMatch([]string{"src/a.c", "README.md"}, paths(commits[0].Files))

	require.Equal("fix: crash in a", commits[1].Subject)
	require.Equal([]FileChange{{Path: "src/a.c", Added: 1, Deleted: 1}}, commits[1].Files)

	require.Equal("add b", commits[2].Subject)
	require.Equal([]FileChange{{Path: "src/b.c", Added: 2}}, commits[2].Files)
	require.True(commits[1].Time.After(commits[0].Time))

	head, err := repo.Head(context.Background())
	require.NoError(err)
	require.Equal(commits[1].Hash, head)
}

func TestWorkingTreeFiles(t *testing.T) {
	require := require.New(t)
	tr := NewTestRepo(t)
	tr.Commit("initial", map[string]string{"src/a.c": "x", "lib/B.java": "y", "top.py": "z"})

	files, err := tr.Repository().WorkingTreeFiles()
	require.NoError(err)
	require.ElementsMatch([]string{"src/a.c", "lib/B.java", "top.py"}, files)
}

func TestCloneOrOpen(t *testing.T) {
	require := require.New(t)
	origin := NewTestRepo(t)
	origin.Commit("initial", map[string]string{"a.go": "package a\n"})

	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "clone")
	params := CloneParams{URL: origin.Dir, Dir: dir, Retry: NewRetryConfig()}

	repo, err := CloneOrOpen(ctx, params)
	require.NoError(err)
	commits, err := repo.Commits(ctx)
	require.NoError(err)
	require.Len(commits, 1)

	origin.Commit("second", map[string]string{"b.go": "package a\n"})

	t.Run("existing dir is reused", func(t *testing.T) {
		params.URL = "file:///does/not/exist"
		repo, err := CloneOrOpen(ctx, params)
		require.NoError(err)
		require.Equal(dir, filepath.Clean(repo.Dir()))
	})

	t.Run("fetch brings new commits", func(t *testing.T) {
		require.NoError(repo.Fetch(ctx))
		commits, err := repo.Commits(ctx)
		require.NoError(err)
		require.Len(commits, 2)
	})
}

func TestCloneOrOpen_Errors(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	_, err := CloneOrOpen(ctx, CloneParams{Dir: filepath.Join(t.TempDir(), "missing")})
	require.ErrorIs(err, ErrEmptyURL)

	_, err = Open(t.TempDir(), NewRetryConfig())
	require.ErrorIs(err, ErrNotARepository)
}

func paths(files []FileChange) []string {
	res := make([]string, len(files))
	for i, f := range files {
		res[i] = f.Path
	}
	return res
}
