/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package logger

import (
	"log/slog"
	"os"
)

const (
	logCtxSkipFrames = 3
	LogAttr_Repo     = "repo"
	LogAttr_Stage    = "stage"
	LogAttr_RunID    = "runid"
	LogAttr_Analyzer = "analyzer"
)

const (
	errorPrefix   = "*****"
	warningPrefix = "!!!"
	infoPrefix    = "==="
	verbosePrefix = "---"
	tracePrefix   = "..."
)

const timeFormat = "01/02 15:04:05.000"

var (
	// ctxHandlerOpts disables handler-level filtering (isEnabled() already gates all calls)
	// and maps internal slog levels to the names used by the logger package.
	ctxHandlerOpts = &slog.HandlerOptions{
		Level: slog.LevelDebug - 4,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				switch a.Value.Any().(slog.Level) {
				case slog.LevelDebug:
					a.Value = slog.StringValue("VERBOSE")
				case slog.LevelDebug - 4:
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	slogOut = slog.New(slog.NewTextHandler(os.Stdout, ctxHandlerOpts))
	slogErr = slog.New(slog.NewTextHandler(os.Stderr, ctxHandlerOpts))
)
