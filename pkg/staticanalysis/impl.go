/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package staticanalysis

import (
	"context"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/voedger/defpred/pkg/goutils/exec"
	"github.com/voedger/defpred/pkg/goutils/logger"
)

func (a *commandAnalyzer) Name() string { return a.cfg.Name }

func (a *commandAnalyzer) Command() string { return a.cfg.Command }

func (a *commandAnalyzer) Accepts(filePath string) bool {
	base := path.Base(filePath)
	if _, ok := a.exclude[base]; ok {
		return false
	}
	_, ok := a.extensions[path.Ext(base)]
	return ok
}

func (a *commandAnalyzer) Analyze(ctx context.Context, dir string, filePath string) FileResult {
	res := FileResult{
		Path:     filePath,
		Analyzer: a.cfg.Name,
		Status:   StatusOK,
	}
	args := make([]string, 0, len(a.cfg.Args)+1)
	args = append(args, a.cfg.Args...)
	args = append(args, filePath)

	stdout, stderr, err := new(exec.PipedExec).
		WithContext(ctx).
		Command(a.cfg.Command, args...).
		WorkingDir(dir).
		RunToStrings()
	res.Stdout = stdout
	res.Stderr = strings.TrimSpace(stderr)
	res.ExitCode = exec.ExitCode(err)
	switch {
	case err == nil:
	case res.ExitCode > 0:
		res.Status = StatusFailed
	default:
		res.Status = StatusError
		res.Error = err.Error()
	}
	if a.parse != nil && res.Status != StatusError {
		res.Findings = a.parse(a.cfg.Name, stdout, stderr)
	}
	return res
}

func (r *runner) Run(ctx context.Context, dir string, files []string) (Summary, error) {
	available := r.availability(ctx)

	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)

	results := []FileResult{}
	jobs := []job{}
	for _, f := range sorted {
		a := r.analyzerFor(f)
		if a == nil {
			continue
		}
		if !available[a.Name()] {
			results = append(results, FileResult{
				Path:     f,
				Analyzer: a.Name(),
				Status:   StatusUnavailable,
			})
			continue
		}
		jobs = append(jobs, job{idx: len(jobs), path: f, analyzer: a})
	}

	analyzed := make([]FileResult, len(jobs))
	done := make([]bool, len(jobs))
	jobsCh := make(chan job)
	wg := sync.WaitGroup{}
	for i := 0; i < r.parallelism; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobsCh {
				logger.VerboseCtx(ctx, "running", j.analyzer.Name(), "on", j.path)
				res := j.analyzer.Analyze(ctx, dir, j.path)
				if res.Status != StatusOK {
					logger.WarningCtx(ctx, j.analyzer.Name(), "failed on", j.path, "exit code", res.ExitCode, res.Error, res.Stderr)
				}
				logger.TraceCtx(ctx, j.analyzer.Name(), "output for", j.path, res.Stdout)
				analyzed[j.idx] = res
				done[j.idx] = true
			}
		}()
	}

	var err error
dispatch:
	for _, j := range jobs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case jobsCh <- j:
		}
	}
	close(jobsCh)
	wg.Wait()

	for i, res := range analyzed {
		if done[i] {
			results = append(results, res)
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return summarize(results), err
}

// availability looks up each analyzer command once per run
func (r *runner) availability(ctx context.Context) map[string]bool {
	res := map[string]bool{}
	for _, a := range r.analyzers {
		if _, ok := res[a.Name()]; ok {
			continue
		}
		_, err := r.lookPath(a.Command())
		res[a.Name()] = err == nil
		if err != nil {
			logger.WarningCtx(ctx, a.Name(), "is not available, its files are skipped:", err)
		}
	}
	return res
}

func (r *runner) analyzerFor(filePath string) IAnalyzer {
	for _, a := range r.analyzers {
		if a.Accepts(filePath) {
			return a
		}
	}
	return nil
}
