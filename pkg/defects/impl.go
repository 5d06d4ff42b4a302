/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package defects

import (
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Normalize divides each count by the sum of all counts.
// Returns empty Scores if the sum is zero.
func Normalize[N int | int64 | float64](counts map[string]N) Scores {
	var total float64
	for _, c := range counts {
		total += float64(c)
	}
	res := make(Scores, len(counts))
	if total == 0 {
		return res
	}
	for path, c := range counts {
		res[path] = float64(c) / total
	}
	return res
}

// Rank returns scores ordered by score descending, ties by path ascending
func Rank(scores Scores) []FileScore {
	paths := maps.Keys(scores)
	slices.Sort(paths)
	res := make([]FileScore, len(paths))
	for i, p := range paths {
		res[i] = FileScore{Path: p, Score: scores[p]}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score > res[j].Score
	})
	return res
}

// Top returns first n items of ranked, all of them if n <= 0 or n > len(ranked)
func Top(ranked []FileScore, n int) []FileScore {
	if n <= 0 || n > len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// Compare reports files shared by the top-n of both rankings
func Compare(a, b []FileScore, n int) Comparison {
	topA := Top(a, n)
	topB := Top(b, n)

	inA := make(map[string]struct{}, len(topA))
	for _, fs := range topA {
		inA[fs.Path] = struct{}{}
	}
	union := make(map[string]struct{}, len(topA)+len(topB))
	maps.Copy(union, inA)

	res := Comparison{Shared: []string{}}
	for _, fs := range topB {
		if _, ok := inA[fs.Path]; ok {
			res.Shared = append(res.Shared, fs.Path)
		}
		union[fs.Path] = struct{}{}
	}
	slices.Sort(res.Shared)
	if len(union) > 0 {
		res.Overlap = float64(len(res.Shared)) / float64(len(union))
	}
	return res
}
