/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package runstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/voedger/defpred/pkg/goutils/filesu"
	"github.com/voedger/defpred/pkg/goutils/timeu"
)

// Open opens or creates the run database
func Open(params Params, iTime timeu.ITime) (IRunStore, error) {
	if err := os.MkdirAll(filepath.Dir(params.Path), filesu.FileMode_DefaultForDir); err != nil {
		// notest
		return nil, err
	}
	db, err := bolt.Open(params.Path, filesu.FileMode_DefaultForFile, &bolt.Options{Timeout: params.Timeout})
	if errors.Is(err, bolt.ErrTimeout) {
		return nil, fmt.Errorf("%w: %s", ErrStoreLocked, params.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open run store %s: %w", params.Path, err)
	}
	if err := initDB(db); err != nil {
		// notest
		return nil, fmt.Errorf("failed to init run store %s: %w", params.Path, errors.Join(err, db.Close()))
	}
	return &runStore{db: db, iTime: iTime}, nil
}
