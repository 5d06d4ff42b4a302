/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package staticanalysis

import "context"

// IAnalyzer wraps an external static analysis tool
type IAnalyzer interface {
	Name() string

	// Executable looked up in PATH
	Command() string

	// path is slash-separated and relative to the work tree
	Accepts(path string) bool

	// Runs the tool on a single file, dir is the work tree. Tool failures are reported in the result, not returned
	Analyze(ctx context.Context, dir string, path string) FileResult
}

// IRunner dispatches work tree files to analyzers
type IRunner interface {
	// Each file is analyzed by the first analyzer that accepts it.
	// Returns ctx error if cancelled, the summary then covers finished files only
	Run(ctx context.Context, dir string, files []string) (Summary, error)
}
