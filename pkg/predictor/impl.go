/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package predictor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/voedger/defpred/pkg/churn"
	"github.com/voedger/defpred/pkg/defects"
	"github.com/voedger/defpred/pkg/gitrepo"
	"github.com/voedger/defpred/pkg/goutils/logger"
	"github.com/voedger/defpred/pkg/pipeline"
	"github.com/voedger/defpred/pkg/repd"
	"github.com/voedger/defpred/pkg/report"
	"github.com/voedger/defpred/pkg/runstore"
)

func (p *predictor) Analyze(ctx context.Context) (runstore.Run, error) {
	work := &analysis{
		runID:     uuid.NewString(),
		startedAt: p.params.ITime.Now(),
	}
	ctx = logger.WithContextAttrs(ctx, logger.LogAttr_RunID, work.runID)
	ctx = logger.WithContextAttrs(ctx, logger.LogAttr_Repo, p.repoName())

	branches := []pipeline.ForkOperatorOptionFunc{}
	if p.fixCache != nil {
		branches = append(branches, pipeline.ForkBranch(pipeline.NewSyncOp(p.predictFixCache)))
	}
	if p.params.Config.REPD.Enabled {
		branches = append(branches, pipeline.ForkBranch(pipeline.NewSyncOp(p.predictREPD)))
	}
	if p.runner != nil {
		branches = append(branches, pipeline.ForkBranch(pipeline.NewSyncOp(p.analyzeStatic)))
	}

	pl := pipeline.NewSyncPipeline(ctx, pipelineName,
		pipeline.WireFunc(stageOpenRepository, p.openRepository),
		pipeline.WireFunc(stageReadHistory, p.readHistory),
		pipeline.WireSyncOperator(stagePredict, pipeline.ForkOperator(pipeline.ForkSame,
			pipeline.ForkBranch(pipeline.NewSyncOp(p.predictChurn)), branches...)),
		pipeline.WireFunc(stageReport, p.buildReport),
		pipeline.WireFunc(stageStore, p.store),
	)
	defer pl.Close()

	if err := pl.SendSync(work); err != nil {
		return runstore.Run{}, err
	}
	logger.InfoCtx(ctx, "analysis finished")
	return work.run, nil
}

func (p *predictor) openRepository(ctx context.Context, w interface{}) (err error) {
	work := w.(*analysis)
	repoCfg := p.params.Config.Repository
	if len(repoCfg.URL) == 0 {
		work.repo, err = gitrepo.Open(repoCfg.Path, p.retry)
	} else {
		work.repo, err = gitrepo.CloneOrOpen(ctx, gitrepo.CloneParams{URL: repoCfg.URL, Dir: repoCfg.Path, Retry: p.retry})
	}
	if err != nil {
		return err
	}
	if repoCfg.Fetch {
		return work.repo.Fetch(ctx)
	}
	return nil
}

func (p *predictor) readHistory(ctx context.Context, w interface{}) (err error) {
	work := w.(*analysis)
	if work.commits, err = work.repo.Commits(ctx); err != nil {
		return err
	}
	// empty history still gets REPD and static analysis over the work tree
	if len(work.commits) > 0 {
		if work.head, err = work.repo.Head(ctx); err != nil {
			return err
		}
	} else {
		logger.WarningCtx(ctx, "repository has no commits")
	}
	work.files, err = work.repo.WorkingTreeFiles()
	logger.VerboseCtx(ctx, "commits:", len(work.commits), "files:", len(work.files))
	return err
}

func (p *predictor) predictChurn(_ context.Context, w interface{}) error {
	work := w.(*analysis)
	work.churn = defects.Rank(churn.Scores(churn.Count(work.commits)))
	return nil
}

func (p *predictor) predictFixCache(ctx context.Context, w interface{}) error {
	work := w.(*analysis)
	res := p.fixCache.Predict(work.commits)
	work.fixCache = &res
	work.fixRank = defects.Rank(res.Scores)
	logger.VerboseCtx(ctx, fmt.Sprintf("fixcache hit rate %.4f, %d fix commits", res.HitRate, res.FixCommits))
	return nil
}

func (p *predictor) predictREPD(ctx context.Context, w interface{}) error {
	work := w.(*analysis)
	logger.VerboseCtx(ctx, "Running REPD defect prediction model...")
	work.repd = defects.Rank(repd.New(p.params.Config.REPD.Params).Predict(work.files))
	return nil
}

// analyzeStatic never fails the run because of the tools, only cancellation is an error
func (p *predictor) analyzeStatic(ctx context.Context, w interface{}) error {
	work := w.(*analysis)
	summary, err := p.runner.Run(ctx, work.repo.Dir(), work.files)
	if err != nil {
		return err
	}
	work.static = &summary
	return nil
}

func (p *predictor) buildReport(ctx context.Context, w interface{}) error {
	work := w.(*analysis)
	cfg := p.params.Config
	top := cfg.Report.Top

	rep := report.Report{
		RunID:      work.runID,
		Repository: p.repoName(),
		Head:       work.head,
		Top:        top,
		Sections:   []report.Section{report.NewChurnSection(work.churn, top)},
		Static:     work.static,
	}
	rankings := map[string][]defects.FileScore{report.SectionChurn: work.churn}
	if work.fixCache != nil {
		rep.Sections = append(rep.Sections, report.NewFixCacheSection(work.fixRank, top))
		rep.Cache = &report.CacheStats{
			CacheSize:  work.fixCache.CacheSize,
			FixCommits: work.fixCache.FixCommits,
			Hits:       work.fixCache.Hits,
			Misses:     work.fixCache.Misses,
			HitRate:    work.fixCache.HitRate,
		}
		rankings[report.SectionFixCache] = work.fixRank
	}
	if cfg.REPD.Enabled {
		rep.Sections = append(rep.Sections, report.NewREPDSection(work.repd, top))
		rankings[report.SectionREPD] = work.repd
	}
	if cfg.Report.Compare {
		rep.Comparisons = compare(rep.Sections, rankings, top)
	}
	work.report = rep

	if p.params.Out != nil {
		if err := report.Render(p.params.Out, cfg.Report.Format, rep); err != nil {
			return err
		}
	}
	if p.params.Event.CI && len(p.params.Event.StepSummary) > 0 {
		if err := report.AppendStepSummary(p.params.Event.StepSummary, rep); err != nil {
			return err
		}
		logger.VerboseCtx(ctx, "job summary written to", p.params.Event.StepSummary)
	}
	return nil
}

func (p *predictor) store(ctx context.Context, w interface{}) error {
	work := w.(*analysis)
	work.run = runstore.Run{
		ID:         work.runID,
		StartedAt:  work.startedAt,
		FinishedAt: p.params.ITime.Now(),
		Report:     work.report,
	}
	s := p.params.Store
	if s == nil {
		return nil
	}
	if _, err := s.Put(work.run); err != nil {
		return err
	}
	if keep := p.params.Config.Store.Keep; keep > 0 {
		removed, err := s.Prune(keep)
		if err != nil {
			return err
		}
		if removed > 0 {
			logger.VerboseCtx(ctx, "old runs removed:", removed)
		}
	}
	return nil
}

func (p *predictor) repoName() string {
	if repo := p.params.Config.Repository; len(repo.URL) > 0 {
		return repo.URL
	}
	return p.params.Config.Repository.Path
}

// compare pairs every two sections having a non-empty ranking
func compare(sections []report.Section, rankings map[string][]defects.FileScore, top int) []report.ComparisonEntry {
	res := []report.ComparisonEntry{}
	for i := 0; i < len(sections); i++ {
		for j := i + 1; j < len(sections); j++ {
			a, b := sections[i].Name, sections[j].Name
			if len(rankings[a]) == 0 || len(rankings[b]) == 0 {
				continue
			}
			res = append(res, report.ComparisonEntry{A: a, B: b, Comparison: defects.Compare(rankings[a], rankings[b], top)})
		}
	}
	return res
}
