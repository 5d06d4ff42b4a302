/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package fixcache

import "errors"

var ErrInvalidParams = errors.New("invalid fixcache params")
