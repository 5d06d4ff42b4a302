/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package report

import (
	"github.com/voedger/defpred/pkg/defects"
	"github.com/voedger/defpred/pkg/staticanalysis"
)

type Format string

// Section is the ranking produced by one prediction approach
type Section struct {
	Name  string              `json:"name"`
	Title string              `json:"title"`
	Files []defects.FileScore `json:"files"`

	// Printed instead of the ranking when Files is empty
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

type CacheStats struct {
	CacheSize  int     `json:"cacheSize"`
	FixCommits int     `json:"fixCommits"`
	Hits       int     `json:"hits"`
	Misses     int     `json:"misses"`
	HitRate    float64 `json:"hitRate"`
}

type ComparisonEntry struct {
	A string `json:"a"`
	B string `json:"b"`
	defects.Comparison
}

type Report struct {
	RunID      string `json:"runId,omitempty"`
	Repository string `json:"repository"`
	Head       string `json:"head,omitempty"`

	// Number of files each section is limited to
	Top int `json:"top"`

	Sections    []Section               `json:"sections"`
	Cache       *CacheStats             `json:"fixCache,omitempty"`
	Comparisons []ComparisonEntry       `json:"comparisons,omitempty"`
	Static      *staticanalysis.Summary `json:"static,omitempty"`
}
