/*
 * Copyright (c) 2020-present unTill Pro, Ltd. and Contributors
 * @author Maxim Geraskin
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package logger

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type logPrinter struct {
	logLevel TLogLevel
}

type ctxKey struct{}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

func isEnabled(logLevel TLogLevel) bool {
	return TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel))) >= logLevel
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}

func getFuncName(skipCount int) (funcName string, line int) {
	return globalLogPrinter.getFuncName(skipCount + 1)
}

// "github.com/voedger/defpred/pkg/gitrepo.(*repository).Commits" -> "gitrepo.(*repository).Commits"
func (p *logPrinter) getFuncName(skipCount int) (funcName string, line int) {
	pc, _, line, ok := runtime.Caller(skipCount)
	if !ok {
		return "", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
		if lastSlash := strings.LastIndexByte(funcName, '/'); lastSlash >= 0 {
			funcName = funcName[lastSlash+1:]
		}
	}
	return funcName, line
}

func (p *logPrinter) getFormattedMsg(msgType string, funcName string, line int, args ...interface{}) string {
	var sb strings.Builder
	sb.WriteString(time.Now().Format(timeFormat))
	sb.WriteString(": ")
	sb.WriteString(msgType)
	sb.WriteString(": [")
	sb.WriteString(funcName)
	sb.WriteString(":")
	sb.WriteString(strconv.Itoa(line))
	sb.WriteString("]:")
	for _, arg := range args {
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprint(arg))
	}
	return sb.String()
}

func (p *logPrinter) print(skipStackFrames int, level TLogLevel, args ...interface{}) {
	funcName, line := p.getFuncName(skipStackFrames)
	PrintLine(level, p.getFormattedMsg(getLevelPrefix(level), funcName, line, args...))
}

func printIfLevel(skipStackFrames int, level TLogLevel, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	// getFuncName <- print <- printIfLevel <- Info <- caller
	globalLogPrinter.print(skipStackFrames+4, level, args...)
}
