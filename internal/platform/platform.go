// Package platform holds one adapter per supported judge. The variant set
// is closed; New is the single dispatch point.
package platform

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sempr/acedit-go/internal/cache"
	"github.com/sempr/acedit-go/internal/fetch"
	"github.com/sempr/acedit-go/pkg/constants"
	"github.com/sempr/acedit-go/pkg/models"
)

// ErrNotFound means the page or JSON did not contain the expected sample
// case markers. The acquisition that hit it is aborted; nothing partial is
// kept in the cache.
var ErrNotFound = errors.New("not found")

// Platform is the capability set every judge variant implements.
type Platform interface {
	// Ref returns the request with the problem code normalized the way the
	// judge expects it (spoj uppercases, hackerrank slugifies). Cache paths
	// must be computed from this, not from the raw user input.
	Ref() models.Request
	// ScrapeProblem acquires sample cases for a single problem.
	ScrapeProblem(ctx context.Context) error
	// ScrapeContest acquires sample cases for every problem of a contest.
	ScrapeContest(ctx context.Context) error
}

// New selects the adapter for a site.
func New(req models.Request, store *cache.Store, client *fetch.Client) (Platform, error) {
	switch req.Site {
	case constants.SiteCodeforces:
		return newCodeforces(req, store, client), nil
	case constants.SiteCodechef:
		return newCodechef(req, store, client), nil
	case constants.SiteSpoj:
		return newSpoj(req, store, client), nil
	case constants.SiteHackerrank:
		return newHackerrank(req, store, client), nil
	default:
		return nil, fmt.Errorf("unsupported site %q", req.Site)
	}
}

// base carries what every adapter needs.
type base struct {
	req    models.Request
	store  *cache.Store
	client *fetch.Client
}

func (b *base) Ref() models.Request { return b.req }

// notFound runs the best-effort cleanup path and returns ErrNotFound.
func (b *base) notFound(what string) error {
	fmt.Printf("%s not found...\n", what)
	fmt.Println("Cleaning up...")
	b.store.Discard(b.req.Site, b.req.Contest, b.req.Problem)
	fmt.Println("Done. Exiting gracefully.")
	return fmt.Errorf("%s: %w", strings.ToLower(what), ErrNotFound)
}

// reportUnresolved surfaces links that failed both waves. They are not
// retried again.
func reportUnresolved(links []string) {
	for _, link := range links {
		fmt.Printf("Could not fetch %s\n", link)
	}
}

// filterCached drops links whose terminal path segment is already cached.
func filterCached(links, cached []string) []string {
	seen := make(map[string]bool, len(cached))
	for _, p := range cached {
		seen[p] = true
	}
	var out []string
	for _, link := range links {
		if !seen[lastSegment(link)] {
			out = append(out, link)
		}
	}
	return out
}

// lastSegment returns the final path element of a URL, query stripped.
func lastSegment(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	if i := strings.LastIndexByte(url, '/'); i >= 0 {
		url = url[i+1:]
	}
	return url
}
