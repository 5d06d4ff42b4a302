/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package staticanalysis

import "errors"

var (
	ErrToolUnavailable = errors.New("analysis tool is not installed")
	ErrUnknownAnalyzer = errors.New("unknown analyzer")
	ErrInvalidAnalyzer = errors.New("invalid analyzer config")
)
