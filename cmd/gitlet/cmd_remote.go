package main

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/repo"
	"github.com/spf13/cobra"
)

func newAddRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "add-remote",
		Short:              "Record a local alias for another repository's .gitlet directory",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			return r.AddRemote(args[0], args[1])
		},
	}
}

func newRmRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "rm-remote",
		Short:              "Remove a remote alias",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			return r.RmRemote(args[0])
		},
	}
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "push",
		Short:              "Fast-forward a remote branch to HEAD",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			return r.Push(args[0], args[1])
		},
	}
}

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "fetch",
		Short:              "Copy a remote branch's history into a local remote-tracking ref",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			return r.Fetch(args[0], args[1])
		},
	}
}

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "pull",
		Short:              "Fetch a remote branch and merge it into the current branch",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			outcome, err := r.Pull(args[0], args[1])
			if err != nil {
				return err
			}
			printMergeOutcome(cmd.OutOrStdout(), outcome)
			return nil
		},
	}
}
