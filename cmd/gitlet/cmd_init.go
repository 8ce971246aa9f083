package main

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/repo"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "init",
		Short:              "Create an empty repository in the current directory",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return gitleterr.ErrIncorrectOperands
			}
			_, err := repo.Init(".")
			return err
		},
	}
}
