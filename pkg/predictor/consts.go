/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package predictor

const pipelineName = "defect-prediction"

// stage names, logged as the stage attribute
const (
	stageOpenRepository = "open-repository"
	stageReadHistory    = "read-history"
	stagePredict        = "predict"
	stageReport         = "report"
	stageStore          = "store"
)
