/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package fixcache

const (
	DefaultCacheRatio   = 0.1
	DefaultBlockSize    = 3
	DefaultPrefetchSize = 3
	DefaultMaxCoChange  = 50

	DefaultFixPattern = `(?i)\b(fix(e[sd])?|bugfix|bugs?|defects?|faults?|patch(ed)?)\b`
)
