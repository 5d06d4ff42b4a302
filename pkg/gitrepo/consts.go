/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import "time"

const (
	gitBinary = "git"
	gitDir    = ".git"

	recordSeparator = "\x1e"
	fieldSeparator  = "\x1f"

	// hash, author time (unix), author name, subject
	logFormat = "--format=" + "%x1e" + "%H%x1f%at%x1f%an%x1f%s"
)

const (
	DefaultRetryInitialDelay = time.Second
	DefaultRetryMaxDelay     = 30 * time.Second
	DefaultRetryMaxAttempts  = 5
)
