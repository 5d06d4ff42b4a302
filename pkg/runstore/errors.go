/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package runstore

import "errors"

var (
	ErrRunNotFound    = errors.New("run not found")
	ErrBucketNotFound = errors.New("bucket not found")
	ErrStoreLocked    = errors.New("run store is locked by another process")
)
