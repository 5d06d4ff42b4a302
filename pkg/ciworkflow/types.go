/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package ciworkflow

// Event is the CI event the analysis runs for
type Event struct {
	// False when running outside CI, other fields are empty then
	CI bool

	Name    string
	Branch  string
	BaseRef string
	HeadRef string
	SHA     string

	// File the job summary is appended to, empty if not supported
	StepSummary string
}

// Triggers the analysis reacts to in CI
type Triggers struct {
	// Push to these branches runs the analysis
	Branches []string

	// Pull request events run the analysis
	PullRequests bool
}
