/*
 * Copyright (c) 2019-present unTill Pro, Ltd. and Contributors
 * @author Maxim Geraskin
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func requireCommands(t *testing.T, names ...string) {
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skip(name, "is not available")
		}
	}
}

func TestPipe(t *testing.T) {
	requireCommands(t, "echo", "grep")
	require := require.New(t)

	buf := new(bytes.Buffer)
	err := new(PipedExec).
		Command("echo", "churn\nrepd\nfixcache").
		Command("grep", "repd").
		Run(buf, nil)
	require.NoError(err)
	require.Equal("repd", strings.TrimSpace(buf.String()))
}

func TestRunToStrings(t *testing.T) {
	requireCommands(t, "sh")
	require := require.New(t)

	stdout, stderr, err := new(PipedExec).
		Command("sh", "-c", "echo out; echo err 1>&2").
		RunToStrings()
	require.NoError(err)
	require.Equal("out\n", stdout)
	require.Equal("err\n", stderr)
}

func TestWorkingDirAndExitCode(t *testing.T) {
	requireCommands(t, "sh")
	require := require.New(t)

	dir := t.TempDir()
	stdout, _, err := new(PipedExec).Command("sh", "-c", "pwd; exit 3").WorkingDir(dir).RunToStrings()
	require.Error(err)
	require.Equal(3, ExitCode(err))
	require.Contains(stdout, dir[strings.LastIndex(dir, "/")+1:])

	require.Equal(0, ExitCode(nil))
	require.Equal(-1, ExitCode(errors.New("not an exit error")))
}

func TestEnv(t *testing.T) {
	requireCommands(t, "sh")
	require := require.New(t)

	stdout, _, err := new(PipedExec).Command("sh", "-c", "echo $DEFPRED_TEST").Env("DEFPRED_TEST=42").RunToStrings()
	require.NoError(err)
	require.Equal("42\n", stdout)
}

func TestContextKillsCommand(t *testing.T) {
	requireCommands(t, "sleep")
	require := require.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	err := new(PipedExec).WithContext(ctx).Command("sleep", "10").Run(nil, nil)
	require.Error(err)
	require.Less(time.Since(start), 5*time.Second)
}

func TestEmptyCommandList(t *testing.T) {
	require := require.New(t)
	_, _, err := new(PipedExec).RunToStrings()
	require.ErrorIs(err, ErrEmptyCommandList)
	require.ErrorIs(new(PipedExec).Run(nil, nil), ErrEmptyCommandList)
}
