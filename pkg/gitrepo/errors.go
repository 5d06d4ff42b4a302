/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import "errors"

var (
	ErrNotARepository  = errors.New("not a git repository")
	ErrEmptyURL        = errors.New("repository URL is empty")
	ErrMalformedLog    = errors.New("malformed git log output")
	ErrGitNotAvailable = errors.New("git executable not found")
)
