/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/sempr/acedit-go/internal/acquire"
	"github.com/sempr/acedit-go/internal/fetch"
)

// addTestCmd represents the add-test command
var addTestCmd = &cobra.Command{
	Use:   "add-test",
	Short: "Add a custom test case to the cache",
	Long: `Reads a test input and its expected output from the terminal and
appends them to the cached cases of the problem, so that "run" picks them
up together with the downloaded samples.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, root, err := newStore()
		if err != nil {
			return err
		}
		req, err := resolveRequest(root)
		if err != nil {
			return err
		}
		if req.Problem == "" {
			return errors.New("--problem is required")
		}
		// 与抓取时使用同一套题号规范化
		req, err = acquire.New(store, fetch.NewClient(0)).Normalize(req)
		if err != nil {
			return err
		}

		rl, err := readline.New("")
		if err != nil {
			return err
		}
		defer rl.Close()

		fmt.Printf("Adding new test to %s (contest: %s, problem: %s)\n", req.Site, req.Contest, req.Problem)
		input, err := readBlock(rl, "input")
		if err != nil {
			return err
		}
		output, err := readBlock(rl, "output")
		if err != nil {
			return err
		}

		// 确保目录存在
		if _, err := store.Exists(req.Site, req.Contest, req.Problem); err != nil {
			return err
		}
		if err := store.Store(req.Site, req.Contest, req.Problem, []string{input}, []string{output}, ""); err != nil {
			return err
		}
		fmt.Println("Test is successfully added.")
		return nil
	},
}

// readBlock collects lines until ^D or two consecutive empty lines.
func readBlock(rl *readline.Instance, what string) (string, error) {
	fmt.Printf("Specify %s (^D or two consecutive empty lines to stop):\n", what)
	var lines []string
	blank := 0
	for {
		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if line == "" {
			blank++
			if blank == 2 {
				lines = lines[:len(lines)-1]
				break
			}
		} else {
			blank = 0
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func init() {
	rootCmd.AddCommand(addTestCmd)
}
