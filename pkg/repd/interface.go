/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package repd

import "github.com/voedger/defpred/pkg/defects"

// IModel scores source files with the Reconstruction Error Probability Distribution model.
//
// The model is simulated: no trained autoencoder is available, so each code file gets a pseudo-random
// score and scores are normalized to sum to 1. The interface is the place to plug a trained model in.
type IModel interface {
	Predict(files []string) defects.Scores
}
