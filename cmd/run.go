/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sempr/acedit-go/internal/acquire"
	"github.com/sempr/acedit-go/internal/config"
	"github.com/sempr/acedit-go/internal/fetch"
	"github.com/sempr/acedit-go/internal/judge"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <source-file>",
	Short: "Run a solution against the cached sample test cases",
	Long: `Compiles the source file if its language needs it, runs the binary
against every cached sample case and prints a verdict table. Missing test
cases are fetched first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, root, err := newStore()
		if err != nil {
			return err
		}
		req, err := resolveRequest(root)
		if err != nil {
			return err
		}
		req.Source = args[0]
		plans, err := judge.LoadPlans(config.LangsPath(root))
		if err != nil {
			return err
		}
		orch := acquire.New(store, fetch.NewClient(0))
		h := judge.NewHarness(store, orch, plans)
		return h.Run(cmd.Context(), req)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
