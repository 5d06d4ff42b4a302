/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package report

import "errors"

var ErrUnknownFormat = errors.New("unknown report format")
