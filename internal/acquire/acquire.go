// Package acquire decides between cache hits and downloads and drives the
// platform adapters.
package acquire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sempr/acedit-go/internal/cache"
	"github.com/sempr/acedit-go/internal/fetch"
	"github.com/sempr/acedit-go/internal/platform"
	"github.com/sempr/acedit-go/pkg/models"
)

type Orchestrator struct {
	Store  *cache.Store
	Client *fetch.Client
}

func New(store *cache.Store, client *fetch.Client) *Orchestrator {
	return &Orchestrator{Store: store, Client: client}
}

// Normalize returns the request as the site's adapter will actually use
// it: problem code casing/slugging applied, contest blanked where the site
// has none. Cache lookups made on behalf of a judge run must go through
// this so they agree with what an acquisition would store.
func (o *Orchestrator) Normalize(req models.Request) (models.Request, error) {
	plat, err := platform.New(req, o.Store, o.Client)
	if err != nil {
		return models.Request{}, err
	}
	return plat.Ref(), nil
}

// Problem downloads test cases for a single problem unless they are already
// cached and no refresh was forced.
func (o *Orchestrator) Problem(ctx context.Context, req models.Request) error {
	plat, err := platform.New(req, o.Store, o.Client)
	if err != nil {
		return err
	}
	ref := plat.Ref()

	lock, err := o.Store.Lock()
	if err != nil {
		return err
	}
	defer lock.Unlock()

	hit, err := o.Store.Exists(ref.Site, ref.Contest, ref.Problem)
	if err != nil {
		return err
	}
	if hit && !ref.Force {
		fmt.Println("Test cases found in cache...")
		return nil
	}
	slog.Debug("cache miss", "site", ref.Site, "contest", ref.Contest, "problem", ref.Problem, "force", ref.Force)
	return plat.ScrapeProblem(ctx)
}

// Contest downloads test cases for every problem of a contest. Contest-level
// hits are never short-circuited: the adapter always enumerates the problem
// links and filters cached ones off the list itself.
func (o *Orchestrator) Contest(ctx context.Context, req models.Request) error {
	plat, err := platform.New(req, o.Store, o.Client)
	if err != nil {
		return err
	}
	ref := plat.Ref()

	lock, err := o.Store.Lock()
	if err != nil {
		return err
	}
	defer lock.Unlock()

	if _, err := o.Store.Exists(ref.Site, ref.Contest, ref.Problem); err != nil {
		return err
	}
	return plat.ScrapeContest(ctx)
}
