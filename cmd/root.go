/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sempr/acedit-go/internal/cache"
	"github.com/sempr/acedit-go/internal/config"
	"github.com/sempr/acedit-go/pkg/constants"
	"github.com/sempr/acedit-go/pkg/models"
)

var rootArgs models.Request

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "acedit",
	Short: "Fetch sample test cases from online judges and test solutions against them",
	Long: `ACedIt downloads sample test cases from Codeforces, Codechef, SPOJ and
Hackerrank, caches them on disk, and can compile and run your solution
against the cached cases, reporting AC/WA/RTE/TLE per case.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. An interrupt cancels the command context so in-flight
// acquisitions and case runs can clean up before exit.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootArgs.Site, "site", "s", "", "competitive programming platform, e.g. codeforces, codechef")
	rootCmd.PersistentFlags().StringVarP(&rootArgs.Contest, "contest", "c", "", "contest code, e.g. JUNE17, LTIME49, 1100")
	rootCmd.PersistentFlags().StringVarP(&rootArgs.Problem, "problem", "p", "", "problem code, e.g. OAK, PRMQ")
	rootCmd.PersistentFlags().BoolVarP(&rootArgs.Force, "force", "f", false, "force download the test cases, even if they are cached")
}

// newStore resolves the cache root and opens the store over it.
func newStore() (*cache.Store, string, error) {
	root, err := config.CacheRoot()
	if err != nil {
		return nil, "", err
	}
	return cache.NewStore(root), root, nil
}

// resolveRequest fills missing site/contest flags from the saved defaults
// and validates the site. The contest is blanked for spoj, which has no
// contest concept.
func resolveRequest(root string) (models.Request, error) {
	req := rootArgs
	defaults := config.LoadDefaults(root)
	if req.Site == "" {
		req.Site = defaults.Site
	}
	if req.Site == "" {
		return req, errors.New("no site given; use --site or set-default site")
	}
	if !constants.IsSupportedSite(req.Site) {
		return req, fmt.Errorf("unsupported site %q (supported: %v)", req.Site, constants.SupportedSites())
	}
	if req.Site == constants.SiteSpoj {
		req.Contest = ""
	} else if req.Contest == "" {
		req.Contest = defaults.Contest
	}
	return req, nil
}
