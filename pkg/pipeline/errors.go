/*
*
* Copyright (c) 2021-present unTill Pro, Ltd.
*
* @author Michael Saigachenko
*
 */

package pipeline

import (
	"errors"
	"strings"
)

type IErrorPipeline interface {
	error
	GetWork() interface{}
	GetOpName() string
	GetPlace() string
}

type errPipeline struct {
	err    error
	work   interface{}
	opName string
	place  string
}

func (e errPipeline) Error() string {
	return "[" + e.opName + "/" + e.place + "] " + e.err.Error()
}

func (e errPipeline) Unwrap() error {
	return e.err
}

func (e errPipeline) GetWork() interface{} {
	return e.work
}

func (e errPipeline) GetOpName() string {
	return e.opName
}

func (e errPipeline) GetPlace() string {
	return e.place
}

type ErrInBranches struct {
	Errors []error
}

func (e ErrInBranches) Error() string {
	ss := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		ss[i] = err.Error()
	}
	return strings.Join(ss, ",")
}

func (e ErrInBranches) Unwrap() []error {
	return e.Errors
}

func (e ErrInBranches) As(target interface{}) bool {
	for _, err := range e.Errors {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}
