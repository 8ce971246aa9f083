package main

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/repo"
	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "rm",
		Short:              "Unstage and remove a tracked file",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return gitleterr.ErrIncorrectOperands
			}
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			return r.Rm(args[0])
		},
	}
}
