/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/voedger/defpred/pkg/staticanalysis"
)

var green = color.New(color.FgGreen).SprintFunc()

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Lists configured static analysis tools and whether they are installed",
		Args:  cobra.NoArgs,
		RunE:  tools,
	}
}

func tools(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ANALYZER\tCOMMAND\tEXTENSIONS\tSTATUS")
	for _, ac := range cfg.Static.Analyzers {
		a, err := staticanalysis.NewAnalyzer(ac)
		if err != nil {
			return err
		}
		status := green("installed")
		if _, err := exec.LookPath(a.Command()); err != nil {
			status = red("not installed")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Name(), a.Command(), strings.Join(ac.Extensions, " "), status)
	}
	return w.Flush()
}
