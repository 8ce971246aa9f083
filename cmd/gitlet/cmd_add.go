package main

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/repo"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "add",
		Short:              "Stage a file for the next commit",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			return r.Add(args[0])
		},
	}
}
