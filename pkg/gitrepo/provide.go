/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/voedger/defpred/pkg/goutils/filesu"
	"github.com/voedger/defpred/pkg/goutils/logger"
	"github.com/voedger/defpred/pkg/goutils/retrier"
)

// Open opens an existing work tree
func Open(dir string, retryCfg retrier.Config) (IRepository, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		// notest
		return nil, err
	}
	exists, err := filesu.Exists(filepath.Join(absDir, gitDir))
	if err != nil {
		// notest
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", absDir, ErrNotARepository)
	}
	return &repository{dir: absDir, retry: retryCfg}, nil
}

// CloneOrOpen clones params.URL into params.Dir if params.Dir does not exist, otherwise reuses it
func CloneOrOpen(ctx context.Context, params CloneParams) (IRepository, error) {
	exists, err := filesu.Exists(params.Dir)
	if err != nil {
		// notest
		return nil, err
	}
	if exists {
		logger.Info("Repository already exists at", params.Dir)
		return Open(params.Dir, params.Retry)
	}
	if len(params.URL) == 0 {
		return nil, fmt.Errorf("%s does not exist: %w", params.Dir, ErrEmptyURL)
	}
	if _, err := exec.LookPath(gitBinary); err != nil {
		return nil, ErrGitNotAvailable
	}

	logger.Info("Cloning repository from", params.URL, "...")
	err = retrier.RetryErr(ctx, params.Retry, func() error {
		_, err := git(ctx, "", "clone", "--quiet", params.URL, params.Dir)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clone %s: %w", params.URL, err)
	}
	return Open(params.Dir, params.Retry)
}

// NewRetryConfig returns the default retry config for clone and fetch
func NewRetryConfig() retrier.Config {
	cfg := retrier.NewConfig(DefaultRetryInitialDelay, DefaultRetryMaxDelay)
	cfg.MaxAttempts = DefaultRetryMaxAttempts
	cfg.OnError = func(attempt int, delay time.Duration, err error) {
		logger.Warning(fmt.Sprintf("git attempt %d failed, retrying in %s: %v", attempt, delay, err))
	}
	return cfg
}
