package main

import (
	"fmt"
	"io"

	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/repo"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "merge",
		Short:              "Merge a branch into the current branch",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			outcome, err := r.Merge(args[0])
			if err != nil {
				return err
			}
			printMergeOutcome(cmd.OutOrStdout(), outcome)
			return nil
		},
	}
}

func printMergeOutcome(out io.Writer, outcome *repo.MergeOutcome) {
	switch {
	case outcome.GivenIsAncestor:
		fmt.Fprintln(out, gitleterr.MsgGivenBranchIsAncestor)
	case outcome.FastForwarded:
		fmt.Fprintln(out, gitleterr.MsgFastForwarded)
	default:
		if outcome.Conflicted {
			fmt.Fprintln(out, gitleterr.MsgMergeConflict)
		}
	}
}
