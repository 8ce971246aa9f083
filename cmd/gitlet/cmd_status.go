package main

import (
	"fmt"
	"io"

	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/repo"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "status",
		Short:              "Show the staging area and working tree status",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			st, err := r.Status()
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), st)
			return nil
		},
	}
}

func printStatus(out io.Writer, st *repo.StatusReport) {
	fmt.Fprintln(out, "=== Branches ===")
	for _, b := range st.Branches {
		if b == st.CurrentBranch {
			fmt.Fprintf(out, "*%s\n", b)
		} else {
			fmt.Fprintln(out, b)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== Staged Files ===")
	for _, f := range st.StagedFiles {
		fmt.Fprintln(out, f)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== Removed Files ===")
	for _, f := range st.RemovedFiles {
		fmt.Fprintln(out, f)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== Modifications Not Staged For Commit ===")
	for _, m := range st.Modifications {
		fmt.Fprintf(out, "%s (%s)\n", m.Name, m.Status)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== Untracked Files ===")
	for _, f := range st.UntrackedFiles {
		fmt.Fprintln(out, f)
	}
	fmt.Fprintln(out)
}
