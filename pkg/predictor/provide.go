/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package predictor

import (
	"fmt"

	"github.com/voedger/defpred/pkg/fixcache"
	"github.com/voedger/defpred/pkg/gitrepo"
	"github.com/voedger/defpred/pkg/goutils/timeu"
	"github.com/voedger/defpred/pkg/staticanalysis"
)

func New(params Params) (IPredictor, error) {
	cfg := params.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	params.Config = cfg
	p := &predictor{
		params: params,
		retry:  gitrepo.NewRetryConfig(),
	}
	if params.Retry != nil {
		p.retry = *params.Retry
	}
	if p.params.ITime == nil {
		p.params.ITime = timeu.NewITime()
	}
	if cfg.FixCache.Enabled {
		fc, err := fixcache.New(cfg.FixCache.Params)
		if err != nil {
			return nil, err
		}
		p.fixCache = fc
	}
	if cfg.Static.Enabled {
		analyzers := make([]staticanalysis.IAnalyzer, 0, len(cfg.Static.Analyzers))
		for _, ac := range cfg.Static.Analyzers {
			a, err := staticanalysis.NewAnalyzer(ac)
			if err != nil {
				return nil, fmt.Errorf("analyzer %s: %w", ac.Name, err)
			}
			analyzers = append(analyzers, a)
		}
		p.runner = staticanalysis.NewRunner(analyzers, cfg.Static.Parallelism)
	}
	return p, nil
}
