/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/voedger/defpred/pkg/ciworkflow"
	"github.com/voedger/defpred/pkg/config"
	"github.com/voedger/defpred/pkg/defects"
	"github.com/voedger/defpred/pkg/gitrepo"
	"github.com/voedger/defpred/pkg/goutils/testingu"
	"github.com/voedger/defpred/pkg/report"
	"github.com/voedger/defpred/pkg/runstore"
	"github.com/voedger/defpred/pkg/staticanalysis"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var testNow = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) *gitrepo.TestRepo {
	tr := gitrepo.NewTestRepo(t)
	tr.Commit("initial import", map[string]string{
		"src/core.c":   "int main() { return 0; }\n",
		"src/util.h":   "#define X 1\n",
		"docs/readme":  "hello\n",
		"app/App.java": "class App {}\n",
	})
	tr.Commit("fix crash in core", map[string]string{"src/core.c": "int main() { return 1; }\n"})
	tr.Commit("add helper", map[string]string{"src/util.h": "#define X 2\n", "src/core.c": "int main() { return 2; }\n"})
	tr.Commit("bugfix: wrong constant", map[string]string{"src/util.h": "#define X 3\n"})
	tr.Commit("fix core again", map[string]string{"src/core.c": "int main() { return 3; }\n"})
	return tr
}

func testConfig(dir string) config.Config {
	cfg := config.Default()
	cfg.Repository = config.Repository{Path: dir}
	cfg.Report.Top = 3
	cfg.REPD.Params.Seed = 1
	cfg.Static.Enabled = false
	cfg.Store.Enabled = false
	return cfg
}

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	tr := newTestRepo(t)
	mockTime := testingu.NewMockTime(testNow)

	store, err := runstore.Open(runstore.Params{Path: filepath.Join(t.TempDir(), "runs.db")}, mockTime)
	require.NoError(err)
	defer store.Close()

	out := bytes.NewBuffer(nil)
	p, err := New(Params{
		Config: testConfig(tr.Dir),
		Out:    out,
		Store:  store,
		ITime:  mockTime,
	})
	require.NoError(err)

	run, err := p.Analyze(context.Background())
	require.NoError(err)
	require.NotEmpty(run.ID)
	require.Equal(testNow, run.StartedAt)

	rep := run.Report
	require.Equal(run.ID, rep.RunID)
	require.Equal(tr.Dir, rep.Repository)
	require.Len(rep.Head, 40)
	require.Len(rep.Sections, 3)

	// core.c changed in 4 of 9 file changes
	churnSection := rep.Sections[0]
	require.Equal(report.SectionChurn, churnSection.Name)
	require.Equal("src/core.c", churnSection.Files[0].Path)
	require.InDelta(4.0/9, churnSection.Files[0].Score, 1e-9)
	require.Equal("src/util.h", churnSection.Files[1].Path)

	require.Equal(report.SectionFixCache, rep.Sections[1].Name)
	require.NotNil(rep.Cache)
	require.Equal(3, rep.Cache.FixCommits)

	repdSection := rep.Sections[2]
	require.Equal(report.SectionREPD, repdSection.Name)
	require.Len(repdSection.Files, 3)
	for _, fs := range repdSection.Files {
		require.NotEqual("docs/readme", fs.Path)
	}
	require.NotEmpty(rep.Comparisons)
	require.Nil(rep.Static)

	require.Contains(out.String(), "Top 3 files most likely to contain defects:\n1. src/core.c (Score: 0.4444)\n")

	stored, err := store.Get(run.ID)
	require.NoError(err)
	require.Equal(rep.Head, stored.Report.Head)
	require.Equal(churnSection.Files, stored.Report.Sections[0].Files)
}

func TestSameSeedSameREPD(t *testing.T) {
	require := require.New(t)
	tr := newTestRepo(t)
	cfg := testConfig(tr.Dir)
	cfg.FixCache.Enabled = false

	analyze := func() report.Section {
		p, err := New(Params{Config: cfg})
		require.NoError(err)
		run, err := p.Analyze(context.Background())
		require.NoError(err)
		require.Len(run.Report.Sections, 2)
		return run.Report.Sections[1]
	}
	require.Equal(analyze(), analyze())
}

func TestDisabledStages(t *testing.T) {
	require := require.New(t)
	tr := newTestRepo(t)
	cfg := testConfig(tr.Dir)
	cfg.FixCache.Enabled = false
	cfg.REPD.Enabled = false
	cfg.Report.Compare = false

	out := bytes.NewBuffer(nil)
	cfg.Report.Format = report.FormatJSON
	p, err := New(Params{Config: cfg, Out: out})
	require.NoError(err)
	run, err := p.Analyze(context.Background())
	require.NoError(err)
	require.Len(run.Report.Sections, 1)
	require.Nil(run.Report.Cache)
	require.Empty(run.Report.Comparisons)

	decoded := report.Report{}
	require.NoError(json.Unmarshal(out.Bytes(), &decoded))
	require.Equal(run.ID, decoded.RunID)
}

func TestStaticAnalysisStage(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported")
	}
	require := require.New(t)
	tr := newTestRepo(t)

	tool := filepath.Join(t.TempDir(), "cppcheck")
	require.NoError(os.WriteFile(tool, []byte("#!/bin/sh\nexit 2\n"), 0o755))

	cfg := testConfig(tr.Dir)
	cfg.Static.Enabled = true
	cppcheck := staticanalysis.DefaultAnalyzerConfig(staticanalysis.AnalyzerCppcheck)
	cppcheck.Command = tool
	spotbugs := staticanalysis.DefaultAnalyzerConfig(staticanalysis.AnalyzerSpotBugs)
	spotbugs.Command = "defpred-no-such-spotbugs"
	cfg.Static.Analyzers = []staticanalysis.AnalyzerConfig{spotbugs, cppcheck}

	p, err := New(Params{Config: cfg})
	require.NoError(err)
	run, err := p.Analyze(context.Background())
	require.NoError(err, "tool failures must not fail the run")

	static := run.Report.Static
	require.NotNil(static)
	require.Equal(2, static.Analyzed)
	require.Equal(2, static.Failed)
	require.Equal(1, static.Skipped)
}

func TestStepSummary(t *testing.T) {
	require := require.New(t)
	tr := newTestRepo(t)
	summary := filepath.Join(t.TempDir(), "summary.md")

	p, err := New(Params{
		Config: testConfig(tr.Dir),
		Event:  ciworkflow.Event{CI: true, Name: ciworkflow.EventPush, Branch: "master", StepSummary: summary},
	})
	require.NoError(err)
	_, err = p.Analyze(context.Background())
	require.NoError(err)

	content, err := os.ReadFile(summary)
	require.NoError(err)
	require.Contains(string(content), "| 1 | `src/core.c` | 0.4444 |")
}

func TestEmptyHistory(t *testing.T) {
	require := require.New(t)
	tr := gitrepo.NewTestRepo(t)
	require.NoError(os.WriteFile(filepath.Join(tr.Dir, "main.go"), []byte("package main\n"), 0o600))

	out := bytes.NewBuffer(nil)
	p, err := New(Params{Config: testConfig(tr.Dir), Out: out})
	require.NoError(err)

	run, err := p.Analyze(context.Background())
	require.NoError(err)
	rep := run.Report
	require.Empty(rep.Head)
	require.Len(rep.Sections, 3)
	require.Empty(rep.Sections[0].Files)
	require.Empty(rep.Sections[1].Files)
	require.Equal(0, rep.Cache.FixCommits)
	require.Equal([]defects.FileScore{{Path: "main.go", Score: 1}}, rep.Sections[2].Files)
	require.Empty(rep.Comparisons)

	require.Contains(out.String(), "Top 3 files most likely to contain defects:\n\n")
	require.Contains(out.String(), "1. main.go (Score: 1.0000)")
}

func TestErrors(t *testing.T) {
	t.Run("not a repository", func(t *testing.T) {
		require := require.New(t)
		p, err := New(Params{Config: testConfig(t.TempDir())})
		require.NoError(err)
		_, err = p.Analyze(context.Background())
		require.ErrorIs(err, gitrepo.ErrNotARepository)
		require.Contains(err.Error(), "[open-repository/doSync]")
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := testConfig(t.TempDir())
		cfg.Report.Top = -1
		_, err := New(Params{Config: cfg})
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
