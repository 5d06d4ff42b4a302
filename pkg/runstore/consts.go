/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package runstore

import "time"

const (
	runsBucketName = "runs"
	idsBucketName  = "ids"
)

// run key is the big-endian start time in unix nanoseconds followed by the run ID
const timeKeySize = 8

const (
	DefaultPath = ".defpred/runs.db"

	// another defpred process holding the database is reported after this wait
	DefaultTimeout = time.Second
)
