/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package staticanalysis

const (
	StatusOK          Status = "ok"
	StatusFailed      Status = "failed"
	StatusError       Status = "error"
	StatusUnavailable Status = "unavailable"
)

const (
	AnalyzerSpotBugs = "spotbugs"
	AnalyzerCppcheck = "cppcheck"
)

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

var spotBugsPriorities = map[string]string{
	"H": SeverityHigh,
	"M": SeverityMedium,
	"L": SeverityLow,
}
