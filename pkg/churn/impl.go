/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

// Package churn predicts defect-prone files from how often they were changed
package churn

import (
	"github.com/voedger/defpred/pkg/defects"
	"github.com/voedger/defpred/pkg/gitrepo"
)

// Count returns the number of commits that changed each file
func Count(commits []gitrepo.Commit) map[string]int {
	counts := map[string]int{}
	for _, c := range commits {
		for _, f := range c.Files {
			counts[f.Path]++
		}
	}
	return counts
}

// Scores is the share of all file changes that touched each file
func Scores(counts map[string]int) defects.Scores {
	return defects.Normalize(counts)
}
