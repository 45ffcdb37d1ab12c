/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sempr/acedit-go/internal/config"
	"github.com/sempr/acedit-go/pkg/constants"
)

// setDefaultCmd represents the set-default command
var setDefaultCmd = &cobra.Command{
	Use:   "set-default <site|contest> <value>",
	Short: "Persist a default site or contest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := args[1]
		var key string
		switch args[0] {
		case "site":
			if !constants.IsSupportedSite(value) {
				return fmt.Errorf("unsupported site %q, expected one of %v", value, constants.SupportedSites())
			}
			key = config.KeyDefaultSite
		case "contest":
			key = config.KeyDefaultContest
		default:
			return fmt.Errorf("unknown key %q, expected \"site\" or \"contest\"", args[0])
		}
		root, err := config.CacheRoot()
		if err != nil {
			return err
		}
		if err := config.SetDefault(root, key, value); err != nil {
			return err
		}
		fmt.Printf("Set %s to %s\n", args[0], value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setDefaultCmd)
}
