/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package defects

// Scores maps a repository-relative file path to its defect likelihood
type Scores map[string]float64

type FileScore struct {
	Path  string  `json:"path"`
	Score float64 `json:"score"`
}

// Comparison of the top files of two rankings
type Comparison struct {
	Shared []string `json:"shared"`

	// Jaccard index of the two top-n sets, 0 if both are empty
	Overlap float64 `json:"overlap"`
}
