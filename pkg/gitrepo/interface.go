/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitrepo

import "context"

// IRepository is a local git work tree
type IRepository interface {
	// Absolute path of the work tree
	Dir() string

	// Hash of the HEAD commit
	Head(ctx context.Context) (string, error)

	// All commits reachable from any ref, oldest first.
	// Merge commits are diffed against their first parent, renames are reported as plain paths.
	Commits(ctx context.Context) ([]Commit, error)

	// Fetches all remotes, retried according to the repository retry config
	Fetch(ctx context.Context) error

	// Slash-separated paths of all regular files of the work tree relative to Dir(), .git excluded
	WorkingTreeFiles() ([]string, error)
}
