/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package predictor

import (
	"context"

	"github.com/voedger/defpred/pkg/runstore"
)

// IPredictor runs the defect prediction workflow on a repository
type IPredictor interface {
	// Analyze runs all enabled stages once, renders the report and stores the run if the store is set
	Analyze(ctx context.Context) (runstore.Run, error)
}
