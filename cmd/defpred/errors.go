/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import "errors"

var (
	ErrStoreDisabled   = errors.New("run store is disabled in config")
	ErrInvalidSchedule = errors.New("invalid schedule")
)
