package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/net/html"

	"github.com/sempr/acedit-go/internal/cache"
	"github.com/sempr/acedit-go/internal/fetch"
	"github.com/sempr/acedit-go/pkg/models"
)

var hackerrankPreRe = regexp.MustCompile(`(<pre>(<code>)?|(</code>)?</pre>)`)

// hackerrank scrapes the hackerrank REST API. The problem slug is derived
// from the supplied problem name: lowercased, tokens hyphen-joined.
type hackerrank struct {
	base
}

func newHackerrank(req models.Request, store *cache.Store, client *fetch.Client) *hackerrank {
	if req.Problem != "" {
		req.Problem = slug.Make(req.Problem)
	}
	return &hackerrank{base{req: req, store: store, client: client}}
}

func (h *hackerrank) ScrapeProblem(ctx context.Context) error {
	fmt.Printf("Fetching problem %s-%s from Hackerrank...\n", h.req.Contest, h.req.Problem)
	url := fmt.Sprintf("https://www.hackerrank.com/rest/contests/%s/challenges/%s", h.req.Contest, h.req.Problem)
	resp, err := h.client.Get(ctx, url)
	if err != nil {
		return err
	}
	inputs, outputs, err := h.parse(resp)
	if err != nil {
		return h.notFound("Problem")
	}
	if err := h.store.Store(h.req.Site, h.req.Contest, h.req.Problem, inputs, outputs, ""); err != nil {
		return err
	}
	fmt.Println("Done.")
	return nil
}

func (h *hackerrank) ScrapeContest(ctx context.Context) error {
	fmt.Printf("Checking problems available for contest %s...\n", h.req.Contest)
	url := fmt.Sprintf("https://www.hackerrank.com/rest/contests/%s/challenges", h.req.Contest)
	resp, err := h.client.Get(ctx, url)
	if err != nil {
		return err
	}
	links, err := h.problemLinks(resp)
	if err != nil {
		return h.notFound("Contest")
	}
	fmt.Printf("Found %d problems..\n", len(links))

	if !h.req.Force {
		links = filterCached(links, h.store.CachedProblems(h.req.Site, h.req.Contest))
	}
	unresolved := fetch.NewBatcher(h.client).Run(ctx, links, h.handleResponse)
	reportUnresolved(unresolved)
	return nil
}

func (h *hackerrank) handleResponse(resp *fetch.Response) error {
	inputs, outputs, err := h.parse(resp)
	if err != nil {
		return err
	}
	problem := lastSegment(resp.EffectiveURL)
	if _, err := h.store.Exists(h.req.Site, h.req.Contest, problem); err != nil {
		return err
	}
	return h.store.Store(h.req.Site, h.req.Contest, problem, inputs, outputs, "")
}

// parse extracts sample blocks from the challenge JSON. Sample pre blocks
// sometimes wrap each output line in its own span; in that case the spans
// are joined with newlines so the original line boundaries survive, instead
// of naively stripping the wrapping tags.
func (h *hackerrank) parse(resp *fetch.Response) (inputs, outputs []string, err error) {
	var payload struct {
		Model struct {
			BodyHTML string `json:"body_html"`
		} `json:"model"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil || payload.Model.BodyHTML == "" {
		return nil, nil, ErrNotFound
	}
	doc, err := parseHTML(payload.Model.BodyHTML)
	if err != nil {
		return nil, nil, err
	}
	for _, div := range findAll(doc, "div", "challenge_sample_input") {
		inputs = append(inputs, sampleText(div))
	}
	for _, div := range findAll(doc, "div", "challenge_sample_output") {
		outputs = append(outputs, sampleText(div))
	}
	return inputs, outputs, nil
}

func sampleText(div *html.Node) string {
	pre := findFirst(div, "pre", "")
	if pre == nil {
		return ""
	}
	spans := findAll(pre, "span", "")
	if len(spans) > 0 {
		parts := make([]string, 0, len(spans))
		for _, span := range spans {
			parts = append(parts, innerHTML(span))
		}
		return strings.TrimSpace(strings.Join(parts, "\n"))
	}
	return strings.TrimSpace(hackerrankPreRe.ReplaceAllString(renderNode(pre), ""))
}

func (h *hackerrank) problemLinks(resp *fetch.Response) ([]string, error) {
	var payload struct {
		Models []struct {
			Slug string `json:"slug"`
		} `json:"models"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil || payload.Models == nil {
		return nil, ErrNotFound
	}
	var links []string
	for _, m := range payload.Models {
		links = append(links, fmt.Sprintf("https://www.hackerrank.com/rest/contests/%s/challenges/%s", h.req.Contest, m.Slug))
	}
	return links, nil
}
