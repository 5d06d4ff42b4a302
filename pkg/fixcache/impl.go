/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package fixcache

import (
	"math"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/defpred/pkg/defects"
	"github.com/voedger/defpred/pkg/gitrepo"
	"github.com/voedger/defpred/pkg/goutils/logger"
)

func (p *predictor) Predict(commits []gitrepo.Commit) Result {
	size := p.cacheSize(commits)
	cache, err := lru.New[string, struct{}](size)
	if err != nil {
		// notest: size is always positive
		panic(err)
	}
	r := &replay{
		params:     p.params,
		cache:      cache,
		seen:       map[string]struct{}{},
		coChanges:  map[string]map[string]int{},
		fixTouches: map[string]int{},
		res:        Result{CacheSize: size},
	}
	for _, c := range commits {
		r.commit(c)
	}
	return r.result()
}

func (p *predictor) cacheSize(commits []gitrepo.Commit) int {
	if p.params.CacheSize > 0 {
		return p.params.CacheSize
	}
	distinct := map[string]struct{}{}
	for _, c := range commits {
		for _, f := range c.Files {
			distinct[f.Path] = struct{}{}
		}
	}
	size := int(math.Ceil(p.params.CacheRatio * float64(len(distinct))))
	if size < 1 {
		size = 1
	}
	return size
}

func (r *replay) commit(c gitrepo.Commit) {
	files := uniqueFiles(c.Files)

	if r.params.FixPattern.MatchString(c.Subject) {
		r.res.FixCommits++
		for _, f := range files {
			r.fixTouches[f.Path]++
			if _, ok := r.cache.Get(f.Path); ok {
				r.res.Hits++
				continue
			}
			r.res.Misses++
			r.load(f.Path)
		}
	}

	r.prefetch(files)

	for _, f := range files {
		r.seen[f.Path] = struct{}{}
	}
	if len(files) <= r.params.MaxCoChange || r.params.MaxCoChange <= 0 {
		r.updateCoChanges(files)
	}
}

// load puts the file and its closest co-changed files into the cache, the file becomes the most recent
func (r *replay) load(path string) {
	for _, n := range r.neighbors(path, r.params.BlockSize-1) {
		r.cache.ContainsOrAdd(n, struct{}{})
	}
	r.cache.Add(path, struct{}{})
}

// prefetch loads files seen for the first time, most added lines first
func (r *replay) prefetch(files []gitrepo.FileChange) {
	if r.params.PrefetchSize == 0 {
		return
	}
	var fresh []gitrepo.FileChange
	for _, f := range files {
		if _, ok := r.seen[f.Path]; !ok {
			fresh = append(fresh, f)
		}
	}
	sort.SliceStable(fresh, func(i, j int) bool {
		if fresh[i].Added != fresh[j].Added {
			return fresh[i].Added > fresh[j].Added
		}
		return fresh[i].Path < fresh[j].Path
	})
	if len(fresh) > r.params.PrefetchSize {
		fresh = fresh[:r.params.PrefetchSize]
	}
	for _, f := range fresh {
		r.cache.ContainsOrAdd(f.Path, struct{}{})
	}
}

func (r *replay) neighbors(path string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	counts := r.coChanges[path]
	res := maps.Keys(counts)
	slices.Sort(res)
	sort.SliceStable(res, func(i, j int) bool {
		return counts[res[i]] > counts[res[j]]
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}

func (r *replay) updateCoChanges(files []gitrepo.FileChange) {
	for _, a := range files {
		for _, b := range files {
			if a.Path == b.Path {
				continue
			}
			m, ok := r.coChanges[a.Path]
			if !ok {
				m = map[string]int{}
				r.coChanges[a.Path] = m
			}
			m[b.Path]++
		}
	}
}

func (r *replay) result() Result {
	res := r.res
	if total := res.Hits + res.Misses; total > 0 {
		res.HitRate = float64(res.Hits) / float64(total)
	}

	keys := r.cache.Keys() // oldest first
	res.Cached = make([]string, len(keys))
	weights := make(map[string]int, len(keys))
	for i, k := range keys {
		res.Cached[len(keys)-1-i] = k
		weights[k] = r.fixTouches[k] + 1
	}
	res.Scores = defects.Normalize(weights)

	logger.Verbose("fixcache: size", res.CacheSize, "fix commits", res.FixCommits, "hits", res.Hits, "misses", res.Misses)
	return res
}

func uniqueFiles(files []gitrepo.FileChange) []gitrepo.FileChange {
	seen := make(map[string]struct{}, len(files))
	res := make([]gitrepo.FileChange, 0, len(files))
	for _, f := range files {
		if _, ok := seen[f.Path]; ok {
			continue
		}
		seen[f.Path] = struct{}{}
		res = append(res, f)
	}
	return res
}
