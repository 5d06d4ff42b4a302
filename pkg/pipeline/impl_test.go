// Copyright (c) 2021-present Voedger Authors.
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
// @author Michael Saigachenko

package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type testwork struct {
	sync.Mutex
	slots map[string]interface{}
}

func newTestWork() *testwork {
	return &testwork{slots: map[string]interface{}{}}
}

func (w *testwork) set(key string, value interface{}) {
	w.Lock()
	defer w.Unlock()
	w.slots[key] = value
}

var errTestFailure = errors.New("test failure")

type catchOp struct {
	NOOP
	closed bool
	onErr  func(err error, work interface{}, context IWorkpieceContext) error
}

func (c *catchOp) OnErr(err error, work interface{}, context IWorkpieceContext) error {
	return c.onErr(err, work, context)
}

func (c *catchOp) Close() {
	c.closed = true
}

func TestBasicUsage_SyncPipeline(t *testing.T) {
	require := require.New(t)

	pipeline := NewSyncPipeline(context.Background(), "analysis",
		WireFunc("history", func(_ context.Context, work interface{}) error {
			work.(*testwork).set("commits", 3)
			return nil
		}),
		WireFunc("churn", func(_ context.Context, work interface{}) error {
			work.(*testwork).set("churn", work.(*testwork).slots["commits"].(int)*2)
			return nil
		}),
		WireSyncOperator("noop", &NOOP{}),
	)
	defer pipeline.Close()

	work := newTestWork()
	require.NoError(pipeline.SendSync(work))
	require.Equal(6, work.slots["churn"])

	// pipeline is reusable
	work = newTestWork()
	require.NoError(pipeline.DoSync(context.Background(), work))
	require.Equal(6, work.slots["churn"])
}

func TestSyncPipeline_Error(t *testing.T) {
	require := require.New(t)
	afterFailure := false
	pipeline := NewSyncPipeline(context.Background(), "analysis",
		WireFunc("fail-here", func(context.Context, interface{}) error { return errTestFailure }),
		WireFunc("after", func(context.Context, interface{}) error {
			afterFailure = true
			return nil
		}),
	)
	defer pipeline.Close()

	err := pipeline.SendSync(newTestWork())
	require.ErrorIs(err, errTestFailure)
	require.Equal("[fail-here/doSync] test failure", err.Error())
	require.False(afterFailure)

	var perr IErrorPipeline
	require.ErrorAs(err, &perr)
	require.Equal("fail-here", perr.GetOpName())
	require.Equal(placeDoSync, perr.GetPlace())
}

func TestSyncPipeline_Catch(t *testing.T) {
	t.Run("error handled", func(t *testing.T) {
		require := require.New(t)
		catch := &catchOp{onErr: func(err error, work interface{}, context IWorkpieceContext) error {
			work.(*testwork).set("error", err)
			work.(*testwork).set("ctx", context)
			return nil
		}}
		pipeline := NewSyncPipeline(context.Background(), "analysis",
			WireFunc("fail-here", func(context.Context, interface{}) error { return errTestFailure }),
			WireSyncOperator("catch", catch),
		)

		work := newTestWork()
		require.NoError(pipeline.SendSync(work))
		require.ErrorIs(work.slots["error"].(error), errTestFailure)
		wctx := work.slots["ctx"].(IWorkpieceContext)
		require.Equal("analysis", wctx.GetPipelineName())
		require.Equal("operator: fail-here, operator: catch", wctx.GetPipelineStruct())

		pipeline.Close()
		require.True(catch.closed)
	})

	t.Run("nested error", func(t *testing.T) {
		require := require.New(t)
		errNested := errors.New("nested")
		pipeline := NewSyncPipeline(context.Background(), "analysis",
			WireFunc("fail-here", func(context.Context, interface{}) error { return errTestFailure }),
			WireSyncOperator("catch", &catchOp{onErr: func(error, interface{}, IWorkpieceContext) error { return errNested }}),
		)
		defer pipeline.Close()

		err := pipeline.SendSync(newTestWork())
		require.ErrorIs(err, errNested)
		require.ErrorIs(err, errTestFailure)

		var perr IErrorPipeline
		require.ErrorAs(err, &perr)
		require.Equal("catch", perr.GetOpName())
		require.Equal(placeCatchOnErr, perr.GetPlace())
	})
}

func TestSyncPipeline_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pipeline := NewSyncPipeline(ctx, "analysis", WireSyncOperator("noop", &NOOP{}))
	defer pipeline.Close()
	cancel()
	require.ErrorIs(t, pipeline.SendSync(newTestWork()), context.Canceled)
}

func TestForkOperator(t *testing.T) {
	t.Run("branches share the work", func(t *testing.T) {
		require := require.New(t)
		fork := ForkOperator(ForkSame,
			ForkBranch(NewSyncOp(func(_ context.Context, work interface{}) error {
				work.(*testwork).set("churn", true)
				return nil
			})),
			ForkBranch(NewSyncOp(func(_ context.Context, work interface{}) error {
				work.(*testwork).set("repd", true)
				return nil
			})),
		)
		pipeline := NewSyncPipeline(context.Background(), "analysis", WireSyncOperator("predict", fork))
		defer pipeline.Close()

		work := newTestWork()
		require.NoError(pipeline.SendSync(work))
		require.Equal(map[string]interface{}{"churn": true, "repd": true}, work.slots)
	})

	t.Run("errors of all branches", func(t *testing.T) {
		require := require.New(t)
		errOther := errors.New("other")
		fork := ForkOperator(ForkSame,
			ForkBranch(NewSyncOp(func(context.Context, interface{}) error { return errTestFailure })),
			ForkBranch(&NOOP{}),
			ForkBranch(NewSyncOp(func(context.Context, interface{}) error { return errOther })),
		)
		err := fork.DoSync(context.Background(), newTestWork())
		require.ErrorIs(err, errTestFailure)
		require.ErrorIs(err, errOther)

		var eib ErrInBranches
		require.ErrorAs(err, &eib)
		require.Len(eib.Errors, 2)
		require.Equal("test failure,other", err.Error())
	})

	t.Run("fork error", func(t *testing.T) {
		fork := ForkOperator(func(interface{}, int) (interface{}, error) { return nil, errTestFailure }, ForkBranch(&NOOP{}))
		require.ErrorIs(t, fork.DoSync(context.Background(), newTestWork()), errTestFailure)
	})

	t.Run("nil fork func", func(t *testing.T) {
		require.Panics(t, func() { ForkOperator(nil, ForkBranch(&NOOP{})) })
	})
}

func TestPipelinePanic(t *testing.T) {
	require.PanicsWithValue(t,
		"critical error in operator 'churn': boom. Pipeline 'analysis' [operator: churn]",
		func() { pipelinePanic("boom", "churn", NewWorkpieceContext("analysis", "operator: churn")) })
}
