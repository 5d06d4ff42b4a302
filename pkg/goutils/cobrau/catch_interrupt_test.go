/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

package cobrau

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/voedger/defpred/pkg/goutils/logger"
)

func TestGoAndCatchInterrupt_ReturnsFunctionError(t *testing.T) {
	testErr := errors.New("analysis failed")
	err := goAndCatchInterrupt(func(ctx context.Context) error {
		return testErr
	})
	require.ErrorIs(t, err, testErr)
}

func TestPrepareRootCmd(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevelWithRestore(logger.LogLevelInfo)()

	called := false
	sub := &cobra.Command{
		Use: "analyze",
		RunE: func(cmd *cobra.Command, args []string) error {
			called = true
			return nil
		},
	}
	root := PrepareRootCmd("defpred", "test", []string{"defpred", "analyze", "--verbose"}, "0.0.1", sub)
	require.NoError(ExecCommandAndCatchInterrupt(root))
	require.True(called)
	require.True(logger.IsVerbose())
}
