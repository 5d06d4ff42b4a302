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
	"io"
	"os/exec"
	"sync"

	"github.com/voedger/defpred/pkg/goutils/logger"
)

// https://github.com/b4b4r07/go-pipe/blob/master/README.md

// PipedExec allows to execute commands in pipe
type PipedExec struct {
	ctx  context.Context
	cmds []*pipedCmd
}

// Stderr redirection
const (
	StderrRedirectNone = iota
	StderrRedirectStdout
	StderrRedirectNull
)

var ErrEmptyCommandList = errors.New("empty command list")

type pipedCmd struct {
	stderrRedirection int
	cmd               *exec.Cmd
}

// WithContext binds the commands added after the call to ctx: they are killed when ctx is done
func (pe *PipedExec) WithContext(ctx context.Context) *PipedExec {
	pe.ctx = ctx
	return pe
}

func (pe *PipedExec) command(name string, stderrRedirection int, args ...string) *PipedExec {
	ctx := pe.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, name, args...)
	lastIdx := len(pe.cmds) - 1
	if lastIdx > -1 {
		var err error
		cmd.Stdin, err = pe.cmds[lastIdx].cmd.StdoutPipe()
		// notest
		if err != nil {
			panic(err)
		}
	}
	pe.cmds = append(pe.cmds, &pipedCmd{stderrRedirection, cmd})
	return pe
}

// Command adds a command to a pipe
func (pe *PipedExec) Command(name string, args ...string) *PipedExec {
	return pe.command(name, StderrRedirectNone, args...)
}

// WorkingDir sets working directory for the last command
func (pe *PipedExec) WorkingDir(wd string) *PipedExec {
	pe.cmds[len(pe.cmds)-1].cmd.Dir = wd
	return pe
}

// Env appends environment variables ("KEY=value") to the last command
func (pe *PipedExec) Env(env ...string) *PipedExec {
	cmd := pe.cmds[len(pe.cmds)-1].cmd
	if cmd.Env == nil {
		cmd.Env = cmd.Environ()
	}
	cmd.Env = append(cmd.Env, env...)
	return pe
}

// Wait until all cmds finish
func (pe *PipedExec) Wait() error {
	var firstErr error
	for _, cmd := range pe.cmds {
		err := cmd.cmd.Wait()
		if nil != err && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Start all cmds
func (pe *PipedExec) Start(out io.Writer, err io.Writer) error {
	lastIdx := len(pe.cmds) - 1
	if lastIdx < 0 {
		return ErrEmptyCommandList
	}
	for _, cmd := range pe.cmds {
		if cmd.stderrRedirection == StderrRedirectNone && nil != err {
			cmd.cmd.Stderr = err
		}
	}
	if nil != out {
		pe.cmds[lastIdx].cmd.Stdout = out
	}

	for _, cmd := range pe.cmds {
		logger.Verbose(cmd.cmd.Path, cmd.cmd.Args)
		if err := cmd.cmd.Start(); nil != err {
			return err
		}
	}
	return nil
}

// Run starts the pipe
func (pe *PipedExec) Run(out io.Writer, err io.Writer) error {
	if e := pe.Start(out, err); nil != e {
		return e
	}
	return pe.Wait()
}

// RunToStrings runs the pipe and saves outputs to strings
func (pe *PipedExec) RunToStrings() (stdout string, stderr string, err error) {
	if len(pe.cmds) == 0 {
		return "", "", ErrEmptyCommandList
	}

	lastCmd := pe.cmds[len(pe.cmds)-1]
	stdoutPipe, err := lastCmd.cmd.StdoutPipe()
	// notest
	if nil != err {
		return "", "", err
	}
	stderrPipe, err := lastCmd.cmd.StderrPipe()
	// notest
	if nil != err {
		return "", "", err
	}

	if err = pe.Start(nil, nil); nil != err {
		return "", "", err
	}

	var wg sync.WaitGroup
	var stdoutBuf, stderrBuf bytes.Buffer
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = stdoutBuf.ReadFrom(stdoutPipe)
	}()
	go func() {
		defer wg.Done()
		_, _ = stderrBuf.ReadFrom(stderrPipe)
	}()
	// pipes must be drained before Wait closes them
	wg.Wait()

	err = pe.Wait()
	return stdoutBuf.String(), stderrBuf.String(), err
}

// ExitCode returns the exit code carried by err, 0 for nil and -1 if the process did not exit normally
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
