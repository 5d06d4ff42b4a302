/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package predictor

import (
	"io"
	"time"

	"github.com/voedger/defpred/pkg/ciworkflow"
	"github.com/voedger/defpred/pkg/config"
	"github.com/voedger/defpred/pkg/defects"
	"github.com/voedger/defpred/pkg/fixcache"
	"github.com/voedger/defpred/pkg/gitrepo"
	"github.com/voedger/defpred/pkg/goutils/retrier"
	"github.com/voedger/defpred/pkg/goutils/timeu"
	"github.com/voedger/defpred/pkg/report"
	"github.com/voedger/defpred/pkg/runstore"
	"github.com/voedger/defpred/pkg/staticanalysis"
)

type Params struct {
	Config config.Config

	// Job summary is appended to Event.StepSummary when running in CI
	Event ciworkflow.Event

	// Report is rendered here, nil means not rendered
	Out io.Writer

	// Nil means runs are not stored
	Store runstore.IRunStore

	// Clone and fetch retries, gitrepo.NewRetryConfig() if nil
	Retry *retrier.Config

	ITime timeu.ITime
}

type predictor struct {
	params   Params
	fixCache fixcache.IPredictor
	runner   staticanalysis.IRunner
	retry    retrier.Config
}

// analysis is the work passed through the pipeline stages
type analysis struct {
	runID     string
	startedAt time.Time

	repo    gitrepo.IRepository
	head    string
	commits []gitrepo.Commit
	files   []string

	churn    []defects.FileScore
	fixCache *fixcache.Result
	fixRank  []defects.FileScore
	repd     []defects.FileScore
	static   *staticanalysis.Summary

	report report.Report
	run    runstore.Run
}
