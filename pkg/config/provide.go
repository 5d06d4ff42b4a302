/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package config

import (
	"os"

	"github.com/voedger/defpred/pkg/ciworkflow"
	"github.com/voedger/defpred/pkg/fixcache"
	"github.com/voedger/defpred/pkg/repd"
	"github.com/voedger/defpred/pkg/report"
	"github.com/voedger/defpred/pkg/runstore"
	"github.com/voedger/defpred/pkg/staticanalysis"
)

func Default() Config {
	return Config{
		Schedule: DefaultSchedule,
		Repository: Repository{
			URL:  DefaultRepoURL,
			Path: DefaultRepoPath,
		},
		Report: Report{
			Top:     report.DefaultTop,
			Format:  report.FormatText,
			Compare: true,
		},
		FixCache: FixCache{
			Enabled: true,
			Params:  fixcache.NewDefaultParams(),
		},
		REPD: REPD{
			Enabled: true,
			Params:  repd.Params{Extensions: repd.DefaultExtensions},
		},
		Static: Static{
			Enabled: true,
			Analyzers: []staticanalysis.AnalyzerConfig{
				staticanalysis.DefaultAnalyzerConfig(staticanalysis.AnalyzerSpotBugs),
				staticanalysis.DefaultAnalyzerConfig(staticanalysis.AnalyzerCppcheck),
			},
		},
		Store: Store{
			Enabled: true,
			Path:    runstore.DefaultPath,
			Keep:    DefaultStoreKeep,
		},
		CI: ciworkflow.NewDefaultTriggers(),
	}
}

// Load returns defaults overridden by the HCL file at path and then by DEFPRED_* environment variables.
// Empty path means no config file.
func Load(path string) (Config, error) {
	return load(path, os.Environ(), os.LookupEnv)
}
