/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/voedger/defpred/pkg/goutils/exec"
)

func git(ctx context.Context, dir string, args ...string) (string, error) {
	pe := new(exec.PipedExec).WithContext(ctx).Command(gitBinary, args...)
	if len(dir) > 0 {
		pe.WorkingDir(dir)
	}
	stdout, stderr, err := pe.RunToStrings()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr))
	}
	return stdout, nil
}

// parseLog parses `git log --numstat` output produced with logFormat
func parseLog(out string) ([]Commit, error) {
	records := strings.Split(out, recordSeparator)
	commits := make([]Commit, 0, len(records))
	for _, record := range records {
		if len(strings.TrimSpace(record)) == 0 {
			continue
		}
		lines := strings.Split(record, "\n")
		header := strings.SplitN(lines[0], fieldSeparator, 4)
		if len(header) != 4 {
			return nil, fmt.Errorf("%w: bad commit header %q", ErrMalformedLog, lines[0])
		}
		unixTime, err := strconv.ParseInt(header[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad commit time %q: %w", ErrMalformedLog, header[1], err)
		}
		commit := Commit{
			Hash:    header[0],
			Time:    time.Unix(unixTime, 0).UTC(),
			Author:  header[2],
			Subject: header[3],
		}
		for _, line := range lines[1:] {
			if len(strings.TrimSpace(line)) == 0 {
				continue
			}
			fc, err := parseNumstat(line)
			if err != nil {
				return nil, err
			}
			commit.Files = append(commit.Files, fc)
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

// "12\t3\tpath/to/file" or "-\t-\tpath/to/binary"
func parseNumstat(line string) (fc FileChange, err error) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) != 3 || len(parts[2]) == 0 {
		return fc, fmt.Errorf("%w: bad numstat line %q", ErrMalformedLog, line)
	}
	fc.Path = parts[2]
	if parts[0] == "-" && parts[1] == "-" {
		fc.Binary = true
		return fc, nil
	}
	if fc.Added, err = strconv.Atoi(parts[0]); err != nil {
		return fc, fmt.Errorf("%w: bad added count in %q: %w", ErrMalformedLog, line, err)
	}
	if fc.Deleted, err = strconv.Atoi(parts[1]); err != nil {
		return fc, fmt.Errorf("%w: bad deleted count in %q: %w", ErrMalformedLog, line, err)
	}
	return fc, nil
}
