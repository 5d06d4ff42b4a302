/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package runstore

// IRunStore keeps analysis runs for historical comparison
type IRunStore interface {
	// Assigns ID and StartedAt if they are empty, returns the run ID
	Put(run Run) (id string, err error)

	// ErrRunNotFound if there is no such run
	Get(id string) (Run, error)

	// Newest first, limit <= 0 means all runs
	List(limit int) ([]Run, error)

	// Removes all but the newest keep runs
	Prune(keep int) (removed int, err error)

	Close() error
}
