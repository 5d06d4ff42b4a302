/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package pipeline

import (
	"context"
	"time"

	"github.com/voedger/defpred/pkg/goutils/logger"
)

type WiredOperator struct {
	name     string
	wctx     IWorkpieceContext
	Stdin    chan interface{} // Stdin is provided by the builder
	Stdout   chan interface{} // Stdout is owned by WiredOperator
	Operator ISyncOperator
	ctx      context.Context
}

func WireSyncOperator(name string, op ISyncOperator) *WiredOperator {
	return &WiredOperator{
		name:     name,
		Stdin:    nil,
		Stdout:   make(chan interface{}, 1),
		Operator: op,
	}
}

func (wo WiredOperator) String() string {
	return "operator: " + wo.name
}

func (wo *WiredOperator) NewError(err error, work interface{}, place string) IErrorPipeline {
	return &errPipeline{
		err:    err,
		work:   work,
		opName: wo.name,
		place:  place,
	}
}

// doSync runs the operator with the operator name as the stage attribute of the logging context
func (wo *WiredOperator) doSync(work interface{}) IErrorPipeline {
	ctx := logger.WithContextAttrs(wo.ctx, logger.LogAttr_Stage, wo.name)
	start := time.Now()
	e := wo.Operator.DoSync(ctx, work)
	if e != nil {
		logger.VerboseCtx(ctx, "stage failed after", time.Since(start), e)
		return wo.NewError(e, work, placeDoSync)
	}
	logger.VerboseCtx(ctx, "stage done in", time.Since(start))
	return nil
}
