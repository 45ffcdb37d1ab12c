package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
)

// batchWorkers caps concurrent requests in one wave. The contract puts no
// limit on fan-out, but unbounded goroutine-per-link fetches would hammer
// the judge, so the cap stays.
const batchWorkers = 8

// Handler consumes one successful response, typically parse + cache write.
// Handlers run sequentially after the wave completes, never concurrently.
type Handler func(*Response) error

// Batcher fetches a set of links concurrently and retries failures exactly
// once as a second wave. Links still failing after the retry are returned
// as the unresolved list; they are reported, not retried further.
type Batcher struct {
	client *Client
}

func NewBatcher(client *Client) *Batcher {
	return &Batcher{client: client}
}

// Run processes all links and returns the unresolved ones. A handler error
// aborts only that link's result, not the batch.
func (b *Batcher) Run(ctx context.Context, links []string, handle Handler) []string {
	failed := b.wave(ctx, links, handle)
	if len(failed) > 0 {
		slog.Info("retrying failed links", "count", len(failed))
		failed = b.wave(ctx, failed, handle)
	}
	return failed
}

func (b *Batcher) wave(ctx context.Context, links []string, handle Handler) []string {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []string
	)
	sem := make(chan struct{}, batchWorkers)
	responses := make([]*Response, len(links))

	for i, link := range links {
		wg.Add(1)
		go func(i int, link string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			resp, err := b.client.get(ctx, link)
			if err != nil || resp.StatusCode != http.StatusOK {
				mu.Lock()
				failed = append(failed, link)
				mu.Unlock()
				return
			}
			responses[i] = resp
		}(i, link)
	}
	wg.Wait()

	// Parsing and cache writes are check-then-act over shared directories,
	// so successful responses are handed over one at a time.
	for _, resp := range responses {
		if resp == nil {
			continue
		}
		if err := handle(resp); err != nil {
			slog.Warn("skipping link", "url", resp.URL, "err", err)
		}
	}
	return failed
}
