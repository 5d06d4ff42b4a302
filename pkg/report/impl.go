/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/defpred/pkg/goutils/filesu"
	"github.com/voedger/defpred/pkg/staticanalysis"
)

var (
	title = color.New(color.FgCyan, color.Bold).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func Render(w io.Writer, format Format, r Report) error {
	switch format {
	case FormatText:
		return Text(w, r)
	case FormatJSON:
		return JSON(w, r)
	case FormatMarkdown:
		return Markdown(w, r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Text renders the report the way it is printed to the console
func Text(w io.Writer, r Report) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, s := range r.Sections {
		fmt.Fprintf(buf, "\n%s\n", title("=== "+s.Title+" ==="))
		if len(s.Files) == 0 && len(s.EmptyMessage) > 0 {
			fmt.Fprintln(buf, s.EmptyMessage)
			continue
		}
		fmt.Fprintf(buf, "Top %d files most likely to contain defects:\n", r.Top)
		for i, fs := range s.Files {
			fmt.Fprintf(buf, "%d. %s (Score: %.4f)\n", i+1, fs.Path, fs.Score)
		}
		if s.Name == SectionFixCache && r.Cache != nil {
			fmt.Fprintf(buf, "Hit rate: %.4f (hits: %d, misses: %d, fix commits: %d, cache size: %d)\n",
				r.Cache.HitRate, r.Cache.Hits, r.Cache.Misses, r.Cache.FixCommits, r.Cache.CacheSize)
		}
	}

	if len(r.Comparisons) > 0 {
		fmt.Fprintf(buf, "\n%s\n", title("=== "+titleCompare+" ==="))
		for _, c := range r.Comparisons {
			fmt.Fprintf(buf, "%s vs %s: %d shared files, overlap %.4f\n", c.A, c.B, len(c.Shared), c.Overlap)
			for _, p := range c.Shared {
				fmt.Fprintf(buf, "  %s\n", p)
			}
		}
	}

	if r.Static != nil {
		fmt.Fprintf(buf, "\n%s\n", title("=== "+titleStatic+" ==="))
		s := r.Static
		fmt.Fprintf(buf, "Analyzed: %d, failed: %d, errors: %d, skipped: %d\n", s.Analyzed, s.Failed, s.Errors, s.Skipped)
		for _, res := range s.Results {
			switch res.Status {
			case staticanalysis.StatusFailed:
				fmt.Fprintf(buf, "%s\n", red(fmt.Sprintf("%s failed for %s: %s", res.Analyzer, res.Path, firstLine(res.Stderr))))
			case staticanalysis.StatusError:
				fmt.Fprintf(buf, "%s\n", red(fmt.Sprintf("Error running %s on %s: %s", res.Analyzer, res.Path, res.Error)))
			}
		}
		for _, sev := range sortedSeverities(s.BySeverity) {
			fmt.Fprintf(buf, "%s: %d\n", sev, s.BySeverity[sev])
		}
		for i, f := range s.Findings {
			if i == maxListedFindings {
				fmt.Fprintf(buf, "... and %d more\n", len(s.Findings)-maxListedFindings)
				break
			}
			fmt.Fprintf(buf, "%s:%d: %s: %s\n", f.File, f.Line, f.Severity, f.Message)
		}
	}

	_, err := w.Write(buf.B)
	return err
}

func JSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Markdown renders the report as a job summary
func Markdown(w io.Writer, r Report) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, "## Defect prediction: %s\n\n", mdEscape(r.Repository))
	if len(r.Head) > 0 {
		fmt.Fprintf(buf, "Head: `%s`\n\n", r.Head)
	}

	for _, s := range r.Sections {
		fmt.Fprintf(buf, "### %s\n\n", s.Title)
		if len(s.Files) == 0 && len(s.EmptyMessage) > 0 {
			fmt.Fprintf(buf, "_%s_\n\n", s.EmptyMessage)
			continue
		}
		buf.WriteString("| # | File | Score |\n|---|------|-------|\n")
		for i, fs := range s.Files {
			fmt.Fprintf(buf, "| %d | `%s` | %.4f |\n", i+1, mdEscape(fs.Path), fs.Score)
		}
		buf.WriteString("\n")
		if s.Name == SectionFixCache && r.Cache != nil {
			fmt.Fprintf(buf, "Hit rate: **%.4f** (%d hits, %d misses)\n\n", r.Cache.HitRate, r.Cache.Hits, r.Cache.Misses)
		}
	}

	if len(r.Comparisons) > 0 {
		fmt.Fprintf(buf, "### %s\n\n", titleCompare)
		buf.WriteString("| Approaches | Shared | Overlap |\n|------------|--------|---------|\n")
		for _, c := range r.Comparisons {
			fmt.Fprintf(buf, "| %s / %s | %d | %.4f |\n", c.A, c.B, len(c.Shared), c.Overlap)
		}
		buf.WriteString("\n")
	}

	if r.Static != nil {
		s := r.Static
		fmt.Fprintf(buf, "### %s\n\n", titleStatic)
		buf.WriteString("| Analyzed | Failed | Errors | Skipped |\n|----------|--------|--------|---------|\n")
		fmt.Fprintf(buf, "| %d | %d | %d | %d |\n\n", s.Analyzed, s.Failed, s.Errors, s.Skipped)
		if len(s.BySeverity) > 0 {
			buf.WriteString("| Severity | Findings |\n|----------|----------|\n")
			for _, sev := range sortedSeverities(s.BySeverity) {
				fmt.Fprintf(buf, "| %s | %d |\n", sev, s.BySeverity[sev])
			}
			buf.WriteString("\n")
		}
	}

	_, err := w.Write(buf.B)
	return err
}

// AppendStepSummary appends the markdown report to the file, e.g. $GITHUB_STEP_SUMMARY
func AppendStepSummary(path string, r Report) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filesu.FileMode_DefaultForFile)
	if err != nil {
		return fmt.Errorf("failed to open step summary %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return Markdown(f, r)
}

func sortedSeverities(bySeverity map[string]int) []string {
	res := maps.Keys(bySeverity)
	slices.Sort(res)
	return res
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
