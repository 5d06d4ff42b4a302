/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package defects

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require := require.New(t)

	scores := Normalize(map[string]int{"a.c": 3, "b.c": 1})
	require.Equal(Scores{"a.c": 0.75, "b.c": 0.25}, scores)

	t.Run("zero total gives empty scores", func(t *testing.T) {
		require.Empty(Normalize(map[string]int{}))
		require.Empty(Normalize(map[string]float64{"a.c": 0, "b.c": 0}))
	})
}

func TestNormalize_SumsToOne(t *testing.T) {
	require := require.New(t)
	f := fuzz.New().NilChance(0).NumElements(1, 50)
	for i := 0; i < 100; i++ {
		counts := map[string]uint16{}
		f.Fuzz(&counts)
		ints := make(map[string]int, len(counts))
		total := 0
		for k, v := range counts {
			ints[k] = int(v)
			total += int(v)
		}
		scores := Normalize(ints)
		if total == 0 {
			require.Empty(scores)
			continue
		}
		sum := 0.0
		for _, s := range scores {
			require.GreaterOrEqual(s, 0.0)
			require.LessOrEqual(s, 1.0)
			sum += s
		}
		require.InDelta(1.0, sum, 1e-9)
	}
}

func TestRank(t *testing.T) {
	require := require.New(t)

	ranked := Rank(Scores{"b.go": 0.25, "a.go": 0.25, "c.go": 0.5})
	require.Equal([]FileScore{
		{Path: "c.go", Score: 0.5},
		{Path: "a.go", Score: 0.25},
		{Path: "b.go", Score: 0.25},
	}, ranked)

	require.Empty(Rank(Scores{}))
}

func TestTop(t *testing.T) {
	require := require.New(t)
	ranked := Rank(Scores{"a": 0.5, "b": 0.3, "c": 0.2})

	require.Len(Top(ranked, 2), 2)
	require.Equal("a", Top(ranked, 1)[0].Path)
	require.Len(Top(ranked, 10), 3)
	require.Len(Top(ranked, 0), 3)
	require.Len(Top(ranked, -1), 3)
}

func TestCompare(t *testing.T) {
	require := require.New(t)

	a := Rank(Scores{"x": 0.4, "y": 0.3, "z": 0.2, "w": 0.1})
	b := Rank(Scores{"y": 0.6, "q": 0.3, "x": 0.1})

	c := Compare(a, b, 3)
	require.Equal([]string{"x", "y"}, c.Shared)
	// top3(a) = x,y,z; top3(b) = y,q,x; union = 4
	require.InDelta(0.5, c.Overlap, 1e-9)

	empty := Compare(nil, nil, 10)
	require.Empty(empty.Shared)
	require.Zero(empty.Overlap)
}
