/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package report

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

const DefaultTop = 10

// Findings listed per report, the rest are only counted
const maxListedFindings = 50

const (
	SectionChurn    = "churn"
	SectionFixCache = "fixcache"
	SectionREPD     = "repd"
)

const (
	titleChurn    = "Running BugCache/FixCache defect prediction (Approach 1)"
	titleFixCache = "Running FixCache replay"
	titleREPD     = "Running REPD defect prediction (Approach 2)"
	titleCompare  = "Comparing approaches"
	titleStatic   = "Running Static Code Analysis to Identify Bugs/Defects"

	NotImplementedREPD = "REPD model not implemented yet."
)
