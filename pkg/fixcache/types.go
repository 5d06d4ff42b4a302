/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package fixcache

import (
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/voedger/defpred/pkg/defects"
)

type Params struct {
	// Absolute cache size, CacheRatio is used if zero
	CacheSize int

	// Cache size as a share of distinct files seen in the history
	CacheRatio float64

	// Number of files loaded on a miss: the missed file and BlockSize-1 files most often changed together with it
	BlockSize int

	// Max number of files first seen in a commit that are loaded into the cache
	PrefetchSize int

	// Commits touching more files do not update co-change statistics, zero means no limit
	MaxCoChange int

	// Commit subjects matching the pattern are considered fixes
	FixPattern *regexp.Regexp
}

type Result struct {
	CacheSize  int     `json:"cacheSize"`
	FixCommits int     `json:"fixCommits"`
	Hits       int     `json:"hits"`
	Misses     int     `json:"misses"`
	HitRate    float64 `json:"hitRate"`

	// Cached files, most recently used first
	Cached []string `json:"cached"`

	// Smoothed share of fix touches of the cached files
	Scores defects.Scores `json:"-"`
}

type predictor struct {
	params Params
}

type replay struct {
	params     Params
	cache      *lru.Cache[string, struct{}]
	seen       map[string]struct{}
	coChanges  map[string]map[string]int
	fixTouches map[string]int
	res        Result
}
