/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package fixcache

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/defpred/pkg/gitrepo"
)

func commit(subject string, paths ...string) gitrepo.Commit {
	c := gitrepo.Commit{Subject: subject}
	for _, p := range paths {
		c.Files = append(c.Files, gitrepo.FileChange{Path: p, Added: 1})
	}
	return c
}

func newPredictor(t *testing.T, cacheSize, blockSize, prefetch int) IPredictor {
	params := NewDefaultParams()
	params.CacheSize = cacheSize
	params.BlockSize = blockSize
	params.PrefetchSize = prefetch
	p, err := New(params)
	require.NoError(t, err)
	return p
}

func TestTemporalLocality(t *testing.T) {
	require := require.New(t)
	p := newPredictor(t, 2, 1, 0)

	res := p.Predict([]gitrepo.Commit{
		commit("add a and b", "a.c", "b.c"),
		commit("fix a", "a.c"),
		commit("fix a again", "a.c"),
		commit("fix b", "b.c"),
		commit("fix c", "c.c"),
		commit("fix a", "a.c"),
	})

	require.Equal(2, res.CacheSize)
	require.Equal(5, res.FixCommits)
	require.Equal(1, res.Hits)
	require.Equal(4, res.Misses)
	require.InDelta(0.2, res.HitRate, 1e-9)
	require.Equal([]string{"a.c", "c.c"}, res.Cached)
	require.InDelta(4.0/6.0, res.Scores["a.c"], 1e-9)
	require.InDelta(2.0/6.0, res.Scores["c.c"], 1e-9)
	require.NotContains(res.Scores, "b.c")
}

func TestSpatialLocality(t *testing.T) {
	require := require.New(t)
	p := newPredictor(t, 3, 2, 0)

	res := p.Predict([]gitrepo.Commit{
		commit("add a and b", "a.c", "b.c"),
		commit("add c", "c.c"),
		commit("fix a", "a.c"),
		commit("fix b", "b.c"),
	})

	require.Equal(1, res.Hits, "b.c is loaded together with a.c")
	require.Equal(1, res.Misses)
	require.Equal([]string{"b.c", "a.c"}, res.Cached)
}

func TestNewFilesPrefetch(t *testing.T) {
	require := require.New(t)
	p := newPredictor(t, 2, 1, 1)

	res := p.Predict([]gitrepo.Commit{
		{Subject: "initial", Files: []gitrepo.FileChange{{Path: "x.c", Added: 1}, {Path: "y.c", Added: 10}}},
		commit("fix y", "y.c"),
	})

	require.Equal(1, res.Hits)
	require.Zero(res.Misses)
	require.Equal(1.0, res.HitRate)
	require.Equal([]string{"y.c"}, res.Cached)
}

func TestLargeCommitsSkipCoChanges(t *testing.T) {
	require := require.New(t)
	params := NewDefaultParams()
	params.CacheSize = 3
	params.BlockSize = 2
	params.PrefetchSize = 0
	params.MaxCoChange = 1
	p, err := New(params)
	require.NoError(err)

	res := p.Predict([]gitrepo.Commit{
		commit("bulk reformat", "a.c", "b.c"),
		commit("fix a", "a.c"),
		commit("fix b", "b.c"),
	})
	require.Zero(res.Hits)
	require.Equal(2, res.Misses)
}

func TestCacheSizeFromRatio(t *testing.T) {
	require := require.New(t)
	p, err := New(NewDefaultParams())
	require.NoError(err)

	var files []string
	for i := 0; i < 11; i++ {
		files = append(files, fmt.Sprintf("f%d.c", i))
	}
	res := p.Predict([]gitrepo.Commit{commit("initial", files...)})
	require.Equal(2, res.CacheSize)

	res = p.Predict(nil)
	require.Equal(1, res.CacheSize)
	require.Zero(res.HitRate)
	require.Empty(res.Cached)
	require.Empty(res.Scores)
}

func TestFixPattern(t *testing.T) {
	re := regexp.MustCompile(DefaultFixPattern)
	for _, s := range []string{"Fix crash", "fixed NPE", "fixes #12", "BUG-17: overflow", "bugfix release", "patched parser", "Resolve defect in gc"} {
		require.True(t, re.MatchString(s), s)
	}
	for _, s := range []string{"add prefix", "refactor", "update debugger docs"} {
		require.False(t, re.MatchString(s), s)
	}
}

func TestInvalidParams(t *testing.T) {
	cases := map[string]func(p *Params){
		"negative size":     func(p *Params) { p.CacheSize = -1 },
		"zero ratio":        func(p *Params) { p.CacheRatio = 0 },
		"ratio above one":   func(p *Params) { p.CacheRatio = 1.5 },
		"zero block":        func(p *Params) { p.BlockSize = 0 },
		"negative prefetch": func(p *Params) { p.PrefetchSize = -1 },
		"no pattern":        func(p *Params) { p.FixPattern = nil },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			params := NewDefaultParams()
			modify(&params)
			_, err := New(params)
			require.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestGitHistory(t *testing.T) {
	require := require.New(t)
	tr := gitrepo.NewTestRepo(t)
	tr.Commit("initial", map[string]string{"vm/interp.c": "1", "vm/gc.c": "1", "README": "1"})
	tr.Commit("fix interpreter crash", map[string]string{"vm/interp.c": "2"})
	tr.Commit("docs", map[string]string{"README": "2"})
	tr.Commit("fix interpreter overflow", map[string]string{"vm/interp.c": "3"})

	commits, err := tr.Repository().Commits(context.Background())
	require.NoError(err)

	res := newPredictor(t, 1, 1, 0).Predict(commits)
	require.Equal(2, res.FixCommits)
	require.Equal(1, res.Hits)
	require.Equal(1, res.Misses)
	require.Equal([]string{"vm/interp.c"}, res.Cached)
}
