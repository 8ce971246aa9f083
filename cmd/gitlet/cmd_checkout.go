package main

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/repo"
	"github.com/spf13/cobra"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "checkout",
		Short:              "Restore a file from HEAD or a commit, or switch branches",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			switch len(args) {
			case 1:
				return r.CheckoutBranch(args[0])
			case 2:
				if args[0] != "--" {
					return gitleterr.ErrIncorrectOperands
				}
				return r.CheckoutHeadFile(args[1])
			case 3:
				if args[1] != "--" {
					return gitleterr.ErrIncorrectOperands
				}
				return r.CheckoutCommitFile(args[0], args[2])
			default:
				return gitleterr.ErrIncorrectOperands
			}
		},
	}
}
