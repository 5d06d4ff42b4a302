/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package repd

import (
	"math/rand"
	"time"
)

func New(params Params) IModel {
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	exts := params.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	m := &model{
		extensions: make(map[string]struct{}, len(exts)),
		rnd:        rand.New(rand.NewSource(seed)), //nolint:gosec
	}
	for _, ext := range exts {
		m.extensions[ext] = struct{}{}
	}
	return m
}
