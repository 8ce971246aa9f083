package main

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/repo"
	"github.com/spf13/cobra"
)

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "commit",
		Short:              "Record a snapshot of the staging area",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			_, err = r.Commit(args[0])
			return err
		},
	}
}
