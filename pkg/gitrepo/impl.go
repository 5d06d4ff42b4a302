/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/voedger/defpred/pkg/goutils/logger"
	"github.com/voedger/defpred/pkg/goutils/retrier"
)

func (r *repository) Dir() string {
	return r.dir
}

func (r *repository) Head(ctx context.Context) (string, error) {
	out, err := git(ctx, r.dir, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (r *repository) Commits(ctx context.Context) ([]Commit, error) {
	out, err := git(ctx, r.dir, "-c", "core.quotepath=off", "log", "--all", "--reverse",
		"--numstat", "--no-renames", "--diff-merges=first-parent", logFormat)
	if err != nil {
		return nil, err
	}
	commits, err := parseLog(out)
	if err != nil {
		return nil, err
	}
	logger.Verbose("commits read:", len(commits))
	return commits, nil
}

func (r *repository) Fetch(ctx context.Context) error {
	return retrier.RetryErr(ctx, r.retry, func() error {
		_, err := git(ctx, r.dir, "fetch", "--all", "--prune", "--quiet")
		return err
	})
}

func (r *repository) WorkingTreeFiles() (files []string, err error) {
	err = filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == gitDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(r.dir, path)
		if err != nil {
			// notest
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files, err
}
