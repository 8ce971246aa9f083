package main

import (
	"fmt"
	"io"

	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/repo"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "log",
		Short:              "Show commit history from HEAD along the first-parent chain",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			entries, err := r.Log()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				printLogEntry(out, e)
			}
			return nil
		},
	}
}

func newGlobalLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "global-log",
		Short:              "Show every commit in the store, ordered by commit id",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			entries, err := r.GlobalLog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				printLogEntry(out, e)
			}
			return nil
		},
	}
}

func printLogEntry(out io.Writer, e repo.LogEntry) {
	fmt.Fprintln(out, "===")
	fmt.Fprintf(out, "commit %s\n", e.ID)
	if e.Commit.IsMerge() {
		fmt.Fprintf(out, "Merge: %s %s\n", shortID(string(e.Commit.Parent)), shortID(string(e.Commit.Parent2)))
	}
	fmt.Fprintf(out, "Date: %s\n", formatTimestamp(e.Commit.Timestamp))
	fmt.Fprintln(out, e.Commit.Message)
	fmt.Fprintln(out)
}
