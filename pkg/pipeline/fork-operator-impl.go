// Copyright (c) 2021-present Voedger Authors.
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package pipeline

import (
	"context"
	"sync"
)

// forkOperator runs branches in parallel, each on the work returned by fork
type forkOperator struct {
	fork     Fork
	branches []ISyncOperator
}

func (f forkOperator) Close() {
	for _, branch := range f.branches {
		branch.Close()
	}
}

func (f forkOperator) DoSync(ctx context.Context, work interface{}) (err error) {
	forks := make([]interface{}, len(f.branches))
	for i := range f.branches {
		fork, err := f.fork(work, i)
		if err != nil {
			return err
		}
		if fork == nil {
			panic("fork is nil")
		}
		forks[i] = fork
	}

	wg := sync.WaitGroup{}
	errs := make([]error, len(f.branches))

	for i, branch := range f.branches {
		wg.Add(1)
		go func(i int, branch ISyncOperator) {
			defer wg.Done()
			errs[i] = branch.DoSync(ctx, forks[i])
		}(i, branch)
	}
	wg.Wait()

	errInBranches := ErrInBranches{}
	for _, e := range errs {
		if e != nil {
			errInBranches.Errors = append(errInBranches.Errors, e)
		}
	}
	if len(errInBranches.Errors) == 0 {
		return nil
	}
	return errInBranches
}

type ForkOperatorOptionFunc func(*forkOperator)

func ForkOperator(fork Fork, branch ForkOperatorOptionFunc, branches ...ForkOperatorOptionFunc) ISyncOperator {
	if fork == nil {
		panic("fork must be not nil")
	}
	forkOperator := new(forkOperator)
	forkOperator.fork = fork
	branch(forkOperator)
	for _, branch := range branches {
		branch(forkOperator)
	}
	return forkOperator
}

func ForkBranch(o ISyncOperator) ForkOperatorOptionFunc {
	return func(forkOperator *forkOperator) {
		forkOperator.branches = append(forkOperator.branches, o)
	}
}

// ForkSame passes the same work to every branch, branches must not write the same fields
func ForkSame(work interface{}, _ int) (interface{}, error) {
	return work, nil
}
