/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package staticanalysis

import "regexp"

type Status string

type Finding struct {
	Analyzer string `json:"analyzer"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column,omitempty"`
	Severity string `json:"severity"`
	ID       string `json:"id,omitempty"`
	Message  string `json:"message"`
}

type FileResult struct {
	Path     string    `json:"path"`
	Analyzer string    `json:"analyzer"`
	Status   Status    `json:"status"`
	ExitCode int       `json:"exitCode"`
	Stdout   string    `json:"-"`
	Stderr   string    `json:"stderr,omitempty"`
	Error    string    `json:"error,omitempty"`
	Findings []Finding `json:"findings,omitempty"`
}

type Summary struct {
	Analyzed   int            `json:"analyzed"`
	Failed     int            `json:"failed"`
	Errors     int            `json:"errors"`
	Skipped    int            `json:"skipped"`
	BySeverity map[string]int `json:"bySeverity"`
	Findings   []Finding      `json:"findings"`
	Results    []FileResult   `json:"-"`
}

// AnalyzerConfig describes a tool invoked as `Command Args... <file>`
type AnalyzerConfig struct {
	Name       string
	Command    string
	Args       []string
	Extensions []string

	// Base names of files never passed to the tool
	Exclude []string
}

type outputParser func(analyzer string, stdout, stderr string) []Finding

type commandAnalyzer struct {
	cfg        AnalyzerConfig
	extensions map[string]struct{}
	exclude    map[string]struct{}
	parse      outputParser
}

type runner struct {
	analyzers   []IAnalyzer
	parallelism int
	lookPath    func(file string) (string, error)
}

type job struct {
	idx      int
	path     string
	analyzer IAnalyzer
}

type findingPattern struct {
	rx    *regexp.Regexp
	build func(analyzer string, m []string) Finding
}

