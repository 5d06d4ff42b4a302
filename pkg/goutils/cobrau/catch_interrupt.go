/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/voedger/defpred/pkg/goutils/logger"
)

// ExecCommandAndCatchInterrupt executes cmd with a context that is cancelled on SIGINT or SIGTERM
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	return goAndCatchInterrupt(func(ctx context.Context) error {
		return cmd.ExecuteContext(ctx)
	})
}

func goAndCatchInterrupt(f func(ctx context.Context) error) (err error) {

	var signals = make(chan os.Signal, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = f(ctx)
		cancel()
	}()

	select {
	case sig := <-signals:
		logger.Info("signal received:", sig)
		cancel()
	case <-ctx.Done():
	}
	logger.Verbose("waiting for function to finish...")
	wg.Wait()
	return err
}
