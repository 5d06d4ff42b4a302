/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"os"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/voedger/defpred/pkg/ciworkflow"
	"github.com/voedger/defpred/pkg/config"
	"github.com/voedger/defpred/pkg/goutils/logger"
	"github.com/voedger/defpred/pkg/predictor"
	"github.com/voedger/defpred/pkg/report"
	"github.com/voedger/defpred/pkg/runstore"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Predicts defect-prone files of the repository and runs static analysis",
		Args:  cobra.NoArgs,
		RunE:  analyze,
	}
	cmd.Flags().String(flagRepoURL, "", "Repository to clone if the repository path does not exist")
	cmd.Flags().String(flagRepoPath, "", "Local repository path")
	cmd.Flags().Int(flagTop, report.DefaultTop, "Number of files to report per approach")
	cmd.Flags().String(flagFormat, string(report.FormatText), "Report format: text, json or markdown")
	cmd.Flags().Bool(flagCI, false, "Run as a CI step: skip events not matching the triggers, write the job summary")
	cmd.Flags().Bool(flagNoStatic, false, "Skip static analysis")
	cmd.Flags().Bool(flagNoStore, false, "Do not store the run")
	cmd.Flags().Int64(flagSeed, 0, "REPD random seed, 0 means time based")
	return cmd
}

func analyze(cmd *cobra.Command, _ []string) error {
	cfg, err := analyzeConfig(cmd)
	if err != nil {
		return err
	}

	event := ciworkflow.Event{}
	if ci, _ := cmd.Flags().GetBool(flagCI); ci {
		event = ciworkflow.DetectEvent()
		if !ciworkflow.ShouldRun(event, cfg.CI) {
			logger.Info("analysis skipped for event", event.Name, "on", event.Branch)
			return nil
		}
	}

	var store runstore.IRunStore
	if cfg.Store.Enabled {
		if store, err = openStore(cfg); err != nil {
			return err
		}
		defer store.Close()
	}

	p, err := predictor.New(predictor.Params{
		Config: cfg,
		Event:  event,
		Out:    os.Stdout,
		Store:  store,
	})
	if err != nil {
		return errors.Annotate(err, "invalid analysis settings")
	}
	run, err := p.Analyze(cmd.Context())
	if err != nil {
		return errors.Annotate(err, "analysis failed")
	}
	if store != nil {
		logger.Verbose("run stored:", run.ID)
	}
	return nil
}

// analyzeConfig applies the flags set explicitly over the loaded config
func analyzeConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed(flagRepoURL) {
		cfg.Repository.URL, _ = flags.GetString(flagRepoURL)
	}
	if flags.Changed(flagRepoPath) {
		cfg.Repository.Path, _ = flags.GetString(flagRepoPath)
	}
	if flags.Changed(flagTop) {
		cfg.Report.Top, _ = flags.GetInt(flagTop)
	}
	if flags.Changed(flagFormat) {
		format, _ := flags.GetString(flagFormat)
		cfg.Report.Format = report.Format(format)
	}
	if flags.Changed(flagSeed) {
		cfg.REPD.Params.Seed, _ = flags.GetInt64(flagSeed)
	}
	if noStatic, _ := flags.GetBool(flagNoStatic); noStatic {
		cfg.Static.Enabled = false
	}
	if noStore, _ := flags.GetBool(flagNoStore); noStore {
		cfg.Store.Enabled = false
	}
	return cfg, errors.Trace(cfg.Validate())
}
