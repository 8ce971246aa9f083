package main

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/repo"
	"github.com/spf13/cobra"
)

func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "branch",
		Short:              "Create a new branch pointing at HEAD",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			return r.Branch(args[0])
		},
	}
}

func newRmBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "rm-branch",
		Short:              "Delete a branch ref",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			return r.RmBranch(args[0])
		},
	}
}
