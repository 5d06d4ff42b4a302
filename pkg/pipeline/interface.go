/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 * @author Michael Saigachenko
 */

package pipeline

import "context"

type IOperator interface {
	// Called once when the pipeline is closed
	Close()
}

type ISyncOperator interface {
	IOperator
	DoSync(ctx context.Context, work interface{}) (err error)
}

// ICatch is implemented by operators that handle errors of the previous operators.
// Returning nil restores the work and passes it to DoSync
type ICatch interface {
	OnErr(err error, work interface{}, context IWorkpieceContext) (newErr error)
}

type ISyncPipeline interface {
	ISyncOperator

	// Blocks until the work passes all operators
	SendSync(work interface{}) (err error)
}

type IWorkpieceContext interface {
	GetPipelineName() string
	GetPipelineStruct() string
}

// Fork returns the work the branch operates on
type Fork func(work interface{}, branchNumber int) (fork interface{}, err error)
