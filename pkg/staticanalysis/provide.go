/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package staticanalysis

import (
	"fmt"
	osexec "os/exec"
	"runtime"
)

// NewSpotBugs analyzes java sources except module descriptors
func NewSpotBugs() IAnalyzer {
	a, _ := NewAnalyzer(DefaultAnalyzerConfig(AnalyzerSpotBugs))
	return a
}

// NewCppcheck analyzes C and C++ sources and headers
func NewCppcheck() IAnalyzer {
	a, _ := NewAnalyzer(DefaultAnalyzerConfig(AnalyzerCppcheck))
	return a
}

// DefaultAnalyzerConfig returns the built-in config for a known analyzer name, zero config otherwise
func DefaultAnalyzerConfig(name string) AnalyzerConfig {
	switch name {
	case AnalyzerSpotBugs:
		return AnalyzerConfig{
			Name:       AnalyzerSpotBugs,
			Command:    "spotbugs",
			Args:       []string{"-textui"},
			Extensions: []string{".java"},
			Exclude:    []string{"module-info.java"},
		}
	case AnalyzerCppcheck:
		return AnalyzerConfig{
			Name:       AnalyzerCppcheck,
			Command:    "cppcheck",
			Args:       []string{"--enable=warning,style", "--template=gcc"},
			Extensions: []string{".cpp", ".h", ".c"},
		}
	}
	return AnalyzerConfig{Name: name}
}

// NewAnalyzer builds an analyzer from config.
// Built-in names get their output parser, other analyzers only report exit status
func NewAnalyzer(cfg AnalyzerConfig) (IAnalyzer, error) {
	if len(cfg.Name) == 0 || len(cfg.Command) == 0 {
		return nil, fmt.Errorf("%w: name and command are required", ErrInvalidAnalyzer)
	}
	if len(cfg.Extensions) == 0 {
		return nil, fmt.Errorf("%w: analyzer %s has no extensions", ErrInvalidAnalyzer, cfg.Name)
	}
	a := &commandAnalyzer{
		cfg:        cfg,
		extensions: map[string]struct{}{},
		exclude:    map[string]struct{}{},
		parse:      parsers[cfg.Name],
	}
	for _, ext := range cfg.Extensions {
		a.extensions[ext] = struct{}{}
	}
	for _, name := range cfg.Exclude {
		a.exclude[name] = struct{}{}
	}
	return a, nil
}

// NewRunner returns a runner with given analyzers, parallelism <= 0 means runtime.NumCPU()
func NewRunner(analyzers []IAnalyzer, parallelism int) IRunner {
	return newRunner(analyzers, parallelism, osexec.LookPath)
}

func newRunner(analyzers []IAnalyzer, parallelism int, lookPath func(string) (string, error)) *runner {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	return &runner{
		analyzers:   analyzers,
		parallelism: parallelism,
		lookPath:    lookPath,
	}
}
