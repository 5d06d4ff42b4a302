/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package repd

import "math/rand"

type Params struct {
	// Files with these extensions are scored, others are ignored
	Extensions []string

	// Seed of the score generator, zero means seeded from the current time
	Seed int64
}

type model struct {
	extensions map[string]struct{}
	rnd        *rand.Rand
}
