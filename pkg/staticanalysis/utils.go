/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package staticanalysis

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var parsers = map[string]outputParser{
	AnalyzerCppcheck: parseCppcheck,
	AnalyzerSpotBugs: parseSpotBugs,
}

// file:line:col: severity: message [id]
var cppcheckPattern = findingPattern{
	rx: regexp.MustCompile(`^(.+?):(\d+):(\d+): (\w+): (.*?)(?: \[(\w+)\])?$`),
	build: func(analyzer string, m []string) Finding {
		return Finding{
			Analyzer: analyzer,
			File:     m[1],
			Line:     atoi(m[2]),
			Column:   atoi(m[3]),
			Severity: m[4],
			Message:  m[5],
			ID:       m[6],
		}
	},
}

// M D NP: Possible null pointer dereference in Foo.bar()  At Foo.java:[line 12]
var spotBugsPattern = findingPattern{
	rx: regexp.MustCompile(`^([HML]) (\w) (\w+): (.*?)\s+At (\S+?):\[lines? (\d+)(?:-\d+)?\]`),
	build: func(analyzer string, m []string) Finding {
		return Finding{
			Analyzer: analyzer,
			File:     m[5],
			Line:     atoi(m[6]),
			Severity: spotBugsPriorities[m[1]],
			ID:       m[3],
			Message:  m[4],
		}
	},
}

// cppcheck reports to stderr
func parseCppcheck(analyzer string, _, stderr string) []Finding {
	return cppcheckPattern.parse(analyzer, stderr)
}

func parseSpotBugs(analyzer string, stdout, _ string) []Finding {
	return spotBugsPattern.parse(analyzer, stdout)
}

func (p findingPattern) parse(analyzer string, output string) (res []Finding) {
	for _, line := range strings.Split(output, "\n") {
		m := p.rx.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		res = append(res, p.build(analyzer, m))
	}
	return res
}

func summarize(results []FileResult) Summary {
	s := Summary{
		BySeverity: map[string]int{},
		Findings:   []Finding{},
		Results:    results,
	}
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			s.Analyzed++
		case StatusFailed:
			s.Analyzed++
			s.Failed++
		case StatusError:
			s.Errors++
		case StatusUnavailable:
			s.Skipped++
		}
		for _, f := range r.Findings {
			s.BySeverity[f.Severity]++
			s.Findings = append(s.Findings, f)
		}
	}
	sort.SliceStable(s.Findings, func(i, j int) bool {
		if s.Findings[i].File != s.Findings[j].File {
			return s.Findings[i].File < s.Findings[j].File
		}
		return s.Findings[i].Line < s.Findings[j].Line
	})
	return s
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
