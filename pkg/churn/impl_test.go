/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package churn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/defpred/pkg/defects"
	"github.com/voedger/defpred/pkg/gitrepo"
)

func TestCountAndScores(t *testing.T) {
	require := require.New(t)

	commits := []gitrepo.Commit{
		{Files: []gitrepo.FileChange{{Path: "a.c"}, {Path: "b.c"}}},
		{Files: []gitrepo.FileChange{{Path: "a.c"}}},
		{Files: []gitrepo.FileChange{{Path: "a.c"}, {Path: "c.h"}}},
		{},
	}
	counts := Count(commits)
	require.Equal(map[string]int{"a.c": 3, "b.c": 1, "c.h": 1}, counts)

	scores := Scores(counts)
	require.InDelta(0.6, scores["a.c"], 1e-9)
	require.InDelta(0.2, scores["b.c"], 1e-9)

	ranked := defects.Rank(scores)
	require.Equal("a.c", ranked[0].Path)
	require.Equal("b.c", ranked[1].Path)
}

func TestNoHistory(t *testing.T) {
	require := require.New(t)
	require.Empty(Scores(Count(nil)))
}

func TestGitHistory(t *testing.T) {
	require := require.New(t)
	tr := gitrepo.NewTestRepo(t)
	tr.Commit("initial", map[string]string{"core/vm.c": "1", "core/gc.c": "1"})
	tr.Commit("tune vm", map[string]string{"core/vm.c": "2"})
	tr.Commit("fix vm crash", map[string]string{"core/vm.c": "3"})

	commits, err := tr.Repository().Commits(context.Background())
	require.NoError(err)

	ranked := defects.Rank(Scores(Count(commits)))
	require.Equal([]defects.FileScore{
		{Path: "core/vm.c", Score: 0.75},
		{Path: "core/gc.c", Score: 0.25},
	}, ranked)
}
