/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package config

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidEnv    = errors.New("invalid environment variable")
)
