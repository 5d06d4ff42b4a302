/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package config

import (
	"github.com/voedger/defpred/pkg/ciworkflow"
	"github.com/voedger/defpred/pkg/fixcache"
	"github.com/voedger/defpred/pkg/repd"
	"github.com/voedger/defpred/pkg/report"
	"github.com/voedger/defpred/pkg/staticanalysis"
)

// Config is the resolved configuration: defaults, then file, then environment
type Config struct {
	// Cron expression used by the watch command
	Schedule string

	Repository Repository
	Report     Report
	FixCache   FixCache
	REPD       REPD
	Static     Static
	Store      Store
	CI         ciworkflow.Triggers
}

type Repository struct {
	// Cloned into Path if Path does not exist
	URL  string
	Path string

	// Fetch all remotes before reading history
	Fetch bool
}

type Report struct {
	Top    int
	Format report.Format

	// Compare rankings of the approaches with each other
	Compare bool
}

type FixCache struct {
	Enabled bool
	Params  fixcache.Params
}

type REPD struct {
	Enabled bool
	Params  repd.Params
}

type Static struct {
	Enabled bool

	// Files analyzed in parallel, zero means number of CPUs
	Parallelism int

	Analyzers []staticanalysis.AnalyzerConfig
}

type Store struct {
	Enabled bool
	Path    string

	// Runs kept after each analysis, zero means keep all
	Keep int
}

// fileRoot is what a config file may contain, unset attributes keep defaults
type fileRoot struct {
	Schedule   *string          `hcl:"schedule,optional"`
	Repository *repositoryBlock `hcl:"repository,block"`
	Report     *reportBlock     `hcl:"report,block"`
	FixCache   *fixCacheBlock   `hcl:"fixcache,block"`
	REPD       *repdBlock       `hcl:"repd,block"`
	Static     *staticBlock     `hcl:"static_analysis,block"`
	Store      *storeBlock      `hcl:"store,block"`
	CI         *ciBlock         `hcl:"ci,block"`
}

type repositoryBlock struct {
	URL   *string `hcl:"url,optional"`
	Path  *string `hcl:"path,optional"`
	Fetch *bool   `hcl:"fetch,optional"`
}

type reportBlock struct {
	Top     *int    `hcl:"top,optional"`
	Format  *string `hcl:"format,optional"`
	Compare *bool   `hcl:"compare,optional"`
}

type fixCacheBlock struct {
	Enabled      *bool    `hcl:"enabled,optional"`
	CacheSize    *int     `hcl:"cache_size,optional"`
	CacheRatio   *float64 `hcl:"cache_ratio,optional"`
	BlockSize    *int     `hcl:"block_size,optional"`
	PrefetchSize *int     `hcl:"prefetch_size,optional"`
	MaxCoChange  *int     `hcl:"max_co_change,optional"`
	FixPattern   *string  `hcl:"fix_pattern,optional"`
}

type repdBlock struct {
	Enabled    *bool    `hcl:"enabled,optional"`
	Seed       *int64   `hcl:"seed,optional"`
	Extensions []string `hcl:"extensions,optional"`
}

type staticBlock struct {
	Enabled     *bool            `hcl:"enabled,optional"`
	Parallelism *int             `hcl:"parallelism,optional"`
	Analyzers   []*analyzerBlock `hcl:"analyzer,block"`
}

type analyzerBlock struct {
	Name       string   `hcl:"name,label"`
	Command    *string  `hcl:"command,optional"`
	Args       []string `hcl:"args,optional"`
	Extensions []string `hcl:"extensions,optional"`
	Exclude    []string `hcl:"exclude,optional"`
}

type storeBlock struct {
	Enabled *bool   `hcl:"enabled,optional"`
	Path    *string `hcl:"path,optional"`
	Keep    *int    `hcl:"keep,optional"`
}

type ciBlock struct {
	Branches     []string `hcl:"branches,optional"`
	PullRequests *bool    `hcl:"pull_requests,optional"`
}
