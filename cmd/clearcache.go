/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// clearCacheCmd represents the clear-cache command
var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Remove all cached test cases for a site",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, root, err := newStore()
		if err != nil {
			return err
		}
		req, err := resolveRequest(root)
		if err != nil {
			return err
		}
		fmt.Printf("Remove entire cache for site %s? (y/N) : ", req.Site)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "y" {
			return nil
		}
		if err := store.Clear(req.Site); err != nil {
			return err
		}
		fmt.Println("Done.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCacheCmd)
}
