/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package runstore

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/voedger/defpred/pkg/goutils/timeu"
	"github.com/voedger/defpred/pkg/report"
)

type Params struct {
	// Database file, parent directories are created if needed
	Path string

	// Max wait for the file lock, zero means wait forever
	Timeout time.Duration
}

type Run struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
	Report     report.Report `json:"report"`
}

type runStore struct {
	db    *bolt.DB
	iTime timeu.ITime
}
