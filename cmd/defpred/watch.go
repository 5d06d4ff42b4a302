/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/voedger/defpred/pkg/goutils/logger"
	"github.com/voedger/defpred/pkg/predictor"
	"github.com/voedger/defpred/pkg/runstore"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Fetches the repository and repeats the analysis on schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE:  watch,
	}
	cmd.Flags().String(flagSchedule, "", "Cron expression or descriptor like @hourly, overrides the config schedule")
	cmd.Flags().Int(flagLimit, 0, "Stop after this number of runs, 0 means run until interrupted")
	return cmd
}

func watch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed(flagSchedule) {
		cfg.Schedule, _ = cmd.Flags().GetString(flagSchedule)
	}
	schedule, err := parseSchedule(cfg.Schedule)
	if err != nil {
		return err
	}
	cfg.Repository.Fetch = true

	var store runstore.IRunStore
	if cfg.Store.Enabled {
		if store, err = openStore(cfg); err != nil {
			return err
		}
		defer store.Close()
	}
	p, err := predictor.New(predictor.Params{
		Config: cfg,
		Out:    os.Stdout,
		Store:  store,
	})
	if err != nil {
		return errors.Annotate(err, "invalid analysis settings")
	}

	limit, _ := cmd.Flags().GetInt(flagLimit)
	logger.Info("watching", cfg.Repository.Path, "on schedule", cfg.Schedule)
	return runScheduled(cmd.Context(), schedule, limit, func(ctx context.Context) {
		if _, err := p.Analyze(ctx); err != nil {
			logger.Error("scheduled analysis failed:", err)
		}
	})
}

func parseSchedule(spec string) (cron.Schedule, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, spec, err)
	}
	return schedule, nil
}

// runScheduled runs job on schedule until ctx is done or the job has run limit times.
// Runs never overlap, a run due while the previous one is still running is skipped
func runScheduled(ctx context.Context, schedule cron.Schedule, limit int, job func(ctx context.Context)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runs := 0
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{})), cron.WithLogger(cronLogger{}))
	c.Schedule(schedule, cron.FuncJob(func() {
		job(ctx)
		runs++
		if limit > 0 && runs >= limit {
			cancel()
		}
	}))
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

// cronLogger routes scheduler messages to the logger
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Verbose(append([]interface{}{"cron:", msg}, keysAndValues...)...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error(append([]interface{}{"cron:", msg, err}, keysAndValues...)...)
}
