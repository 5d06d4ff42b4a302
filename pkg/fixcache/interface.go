/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package fixcache

import "github.com/voedger/defpred/pkg/gitrepo"

// IPredictor replays a commit history through a fault cache.
// Files remaining in the cache after the replay are the predicted defect-prone files.
type IPredictor interface {
	// commits must be ordered oldest first
	Predict(commits []gitrepo.Commit) Result
}
