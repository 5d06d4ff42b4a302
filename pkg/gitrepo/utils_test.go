/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLog(t *testing.T) {
	require := require.New(t)

	out := "\x1eaaa\x1f1704067200\x1fAlice\x1finitial commit\n\n" +
		"10\t0\tsrc/main.c\n" +
		"-\t-\tdocs/logo.png\n" +
		"\x1ebbb\x1f1704070800\x1fBob\x1ffix: null pointer in parser\n\n" +
		"3\t1\tsrc/main.c\n" +
		"\x1eccc\x1f1704074400\x1fBob\x1f\n"

	commits, err := parseLog(out)
	require.NoError(err)
	require.Len(commits, 3)

	require.Equal("aaa", commits[0].Hash)
	require.Equal("Alice", commits[0].Author)
	require.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), commits[0].Time)
	require.Equal([]FileChange{
		{Path: "src/main.c", Added: 10},
		{Path: "docs/logo.png", Binary: true},
	}, commits[0].Files)

	require.Equal("fix: null pointer in parser", commits[1].Subject)
	require.Equal([]FileChange{{Path: "src/main.c", Added: 3, Deleted: 1}}, commits[1].Files)

	require.Empty(commits[2].Subject)
	require.Empty(commits[2].Files)

	t.Run("empty output", func(t *testing.T) {
		commits, err := parseLog("")
		require.NoError(err)
		require.Empty(commits)
	})
}

func TestParseLog_Malformed(t *testing.T) {
	cases := map[string]string{
		"short header":  "\x1eaaa\x1f1704067200\n",
		"bad time":      "\x1eaaa\x1fyesterday\x1fAlice\x1fsubject\n",
		"bad numstat":   "\x1eaaa\x1f1704067200\x1fAlice\x1fsubject\n\nten\t0\tmain.c\n",
		"missing path":  "\x1eaaa\x1f1704067200\x1fAlice\x1fsubject\n\n1\t0\n",
		"bad deletions": "\x1eaaa\x1f1704067200\x1fAlice\x1fsubject\n\n1\tx\tmain.c\n",
	}
	for name, out := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseLog(out)
			require.ErrorIs(t, err, ErrMalformedLog)
		})
	}
}
