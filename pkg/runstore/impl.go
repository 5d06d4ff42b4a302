/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package runstore

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

func (s *runStore) Put(run Run) (string, error) {
	if len(run.ID) == 0 {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = s.iTime.Now()
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = s.iTime.Now()
	}
	run.Report.RunID = run.ID
	data, err := json.Marshal(run)
	if err != nil {
		// notest
		return "", err
	}
	key := runKey(run)
	err = s.db.Update(func(tx *bolt.Tx) error {
		runs, ids, err := buckets(tx)
		if err != nil {
			return err
		}
		// same ID stored again replaces the previous run
		if prevKey := ids.Get([]byte(run.ID)); prevKey != nil {
			if err := runs.Delete(prevKey); err != nil {
				return err
			}
		}
		if err := runs.Put(key, data); err != nil {
			return err
		}
		return ids.Put([]byte(run.ID), key)
	})
	if err != nil {
		return "", fmt.Errorf("failed to store run %s: %w", run.ID, err)
	}
	return run.ID, nil
}

func (s *runStore) Get(id string) (run Run, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		runs, ids, err := buckets(tx)
		if err != nil {
			return err
		}
		key := ids.Get([]byte(id))
		if key == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		data := runs.Get(key)
		if data == nil {
			// notest
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return json.Unmarshal(data, &run)
	})
	return run, err
}

func (s *runStore) List(limit int) (res []Run, err error) {
	res = []Run{}
	err = s.db.View(func(tx *bolt.Tx) error {
		runs, _, err := buckets(tx)
		if err != nil {
			return err
		}
		c := runs.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(res) == limit {
				break
			}
			run := Run{}
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("failed to decode run %x: %w", k, err)
			}
			res = append(res, run)
		}
		return nil
	})
	return res, err
}

func (s *runStore) Prune(keep int) (removed int, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		runs, ids, err := buckets(tx)
		if err != nil {
			return err
		}
		keys := [][]byte{}
		c := runs.Cursor()
		for k, _ := c.Last(); k != nil; k, _ = c.Prev() {
			keep--
			if keep < 0 {
				keys = append(keys, append([]byte(nil), k...))
			}
		}
		for _, k := range keys {
			if err := ids.Delete(k[timeKeySize:]); err != nil {
				return err
			}
			if err := runs.Delete(k); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	return removed, err
}

func (s *runStore) Close() error {
	return s.db.Close()
}

func initDB(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(runsBucketName)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(idsBucketName))
		return err
	})
}

func buckets(tx *bolt.Tx) (runs *bolt.Bucket, ids *bolt.Bucket, err error) {
	runs = tx.Bucket([]byte(runsBucketName))
	ids = tx.Bucket([]byte(idsBucketName))
	if runs == nil || ids == nil {
		// notest
		return nil, nil, ErrBucketNotFound
	}
	return runs, ids, nil
}

func runKey(run Run) []byte {
	key := make([]byte, timeKeySize, timeKeySize+len(run.ID))
	binary.BigEndian.PutUint64(key, uint64(run.StartedAt.UnixNano())) //nolint:gosec
	return append(key, run.ID...)
}
