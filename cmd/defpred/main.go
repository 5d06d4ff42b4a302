/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/voedger/defpred/pkg/goutils/cobrau"
	"github.com/voedger/defpred/pkg/goutils/logger"
)

//go:embed version
var version string

var red = color.New(color.FgRed).SprintFunc()

func main() {
	logger.PrintLine = printLogLine
	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"defpred",
		"Predicts defect-prone files from git history and runs static analysis",
		args,
		ver,
		newAnalyzeCmd(),
		newRunsCmd(),
		newWatchCmd(),
		newToolsCmd(),
	)
	rootCmd.PersistentFlags().String(flagConfig, "", fmt.Sprintf("Path to the HCL config file, %s from the current directory is used if present", defaultConfigFileHint))
	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}

// printLogLine prints errors in red to stderr
func printLogLine(level logger.TLogLevel, line string) {
	if level == logger.LogLevelError {
		fmt.Fprintln(os.Stderr, red(line))
		return
	}
	fmt.Fprintln(os.Stdout, line)
}
