/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	"time"

	"github.com/voedger/defpred/pkg/goutils/retrier"
)

type Commit struct {
	Hash    string
	Author  string
	Time    time.Time
	Subject string
	Files   []FileChange
}

type FileChange struct {
	Path    string
	Added   int
	Deleted int
	Binary  bool
}

type CloneParams struct {
	URL   string
	Dir   string
	Retry retrier.Config
}

type repository struct {
	dir   string
	retry retrier.Config
}
