/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/voedger/defpred/pkg/report"
)

func newRunsCmd() *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Stored analysis runs",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE:  runsList,
	}
	listCmd.Flags().Int(flagLimit, defaultRunsLimit, "Max number of runs to list, 0 means all")

	showCmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Prints the report of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runsShow,
	}
	showCmd.Flags().String(flagFormat, string(report.FormatText), "Report format: text, json or markdown")

	runsCmd.AddCommand(listCmd, showCmd)
	return runsCmd
}

func runsList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt(flagLimit)
	runs, err := store.List(limit)
	if err != nil {
		return errors.Annotate(err, "failed to list runs")
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tDURATION\tHEAD\tREPOSITORY")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.StartedAt.Local().Format(time.DateTime),
			r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond),
			shortHash(r.Report.Head),
			r.Report.Repository,
		)
	}
	return w.Flush()
}

func runsShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	formatFlag, _ := cmd.Flags().GetString(flagFormat)
	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Get(args[0])
	if err != nil {
		return errors.Trace(err)
	}
	if format == report.FormatText {
		fmt.Printf("Run %s of %s started %s\n", run.ID, run.Report.Repository, run.StartedAt.Local().Format(time.DateTime))
	}
	return report.Render(os.Stdout, format, run.Report)
}
