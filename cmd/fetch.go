/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sempr/acedit-go/internal/acquire"
	"github.com/sempr/acedit-go/internal/fetch"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download sample test cases for a problem or a whole contest",
	Long: `Downloads the sample test cases of a single problem when --problem is
given, or of every problem in the contest otherwise. Cached problems are
skipped unless --force is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, root, err := newStore()
		if err != nil {
			return err
		}
		req, err := resolveRequest(root)
		if err != nil {
			return err
		}
		orch := acquire.New(store, fetch.NewClient(0))
		if req.Problem != "" {
			return orch.Problem(cmd.Context(), req)
		}
		if req.Contest == "" {
			return errors.New("either --problem or --contest is required")
		}
		return orch.Contest(cmd.Context(), req)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
