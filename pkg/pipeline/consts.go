// Copyright (c) 2021-present Voedger Authors.
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
// @author Michael Saigachenko

package pipeline

// Error places
const (
	placeCatchOnErr = "catch-onErr"
	placeDoSync     = "doSync"
)
