package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/sempr/acedit-go/internal/cache"
	"github.com/sempr/acedit-go/internal/fetch"
	"github.com/sempr/acedit-go/pkg/models"
)

// Sample blocks on codechef are not individually tagged, so extraction works
// by paired regex replacement: strip everything before the case payload and
// after the sibling marker instead of walking the tag tree.
var (
	chefPreRe    = regexp.MustCompile(`(?s)<pre>.*?</pre>`)
	chefInputRe  = regexp.MustCompile(`(?s)(<pre>.*<b>Input:?</b>:?|<b>Output:?</b>.+</pre>)`)
	chefOutputRe = regexp.MustCompile(`(?s)(<pre>.+<b>Output:?</b>:?|</pre>)`)
)

// codechef scrapes codechef.com through its JSON API. The problem code is
// kept exactly as supplied; the judge treats casing as significant here,
// unlike spoj.
type codechef struct {
	base
}

func newCodechef(req models.Request, store *cache.Store, client *fetch.Client) *codechef {
	return &codechef{base{req: req, store: store, client: client}}
}

func (c *codechef) ScrapeProblem(ctx context.Context) error {
	fmt.Printf("Fetching problem %s-%s from Codechef...\n", c.req.Contest, c.req.Problem)
	url := fmt.Sprintf("https://codechef.com/api/contests/%s/problems/%s", c.req.Contest, c.req.Problem)
	resp, err := c.client.Get(ctx, url)
	if err != nil {
		return err
	}
	inputs, outputs, err := c.parse(resp)
	if err != nil {
		return c.notFound("Problem")
	}
	if err := c.store.Store(c.req.Site, c.req.Contest, c.req.Problem, inputs, outputs, ""); err != nil {
		return err
	}
	fmt.Println("Done.")
	return nil
}

func (c *codechef) ScrapeContest(ctx context.Context) error {
	fmt.Printf("Checking problems available for contest %s...\n", c.req.Contest)
	resp, err := c.client.Get(ctx, "https://codechef.com/"+c.req.Contest)
	if err != nil {
		return err
	}
	links, err := c.problemLinks(resp)
	if err != nil {
		return c.notFound("Contest")
	}
	fmt.Printf("Found %d problems..\n", len(links))

	if !c.req.Force {
		links = filterCached(links, c.store.CachedProblems(c.req.Site, c.req.Contest))
	}
	unresolved := fetch.NewBatcher(c.client).Run(ctx, links, c.handleResponse)
	reportUnresolved(unresolved)
	return nil
}

func (c *codechef) handleResponse(resp *fetch.Response) error {
	inputs, outputs, err := c.parse(resp)
	if err != nil {
		return err
	}
	problem := lastSegment(resp.EffectiveURL)
	if _, err := c.store.Exists(c.req.Site, c.req.Contest, problem); err != nil {
		return err
	}
	return c.store.Store(c.req.Site, c.req.Contest, problem, inputs, outputs, "")
}

// parse pulls sample cases out of the HTML fragment embedded in the JSON
// body. Invalid JSON or a missing body key means the problem does not exist.
func (c *codechef) parse(resp *fetch.Response) (inputs, outputs []string, err error) {
	var payload struct {
		Body string `json:"body"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil || payload.Body == "" {
		return nil, nil, ErrNotFound
	}
	for _, block := range chefPreRe.FindAllString(payload.Body, -1) {
		inp := stripTags(chefInputRe.ReplaceAllString(block, ""))
		out := stripTags(chefOutputRe.ReplaceAllString(block, ""))
		inputs = append(inputs, strings.TrimSpace(inp))
		outputs = append(outputs, strings.TrimSpace(out))
	}
	return inputs, outputs, nil
}

func (c *codechef) problemLinks(resp *fetch.Response) ([]string, error) {
	doc, err := parseHTML(string(resp.Body))
	if err != nil {
		return nil, err
	}
	table := findFirst(doc, "table", "dataTable")
	if table == nil {
		return nil, ErrNotFound
	}
	var links []string
	for _, div := range findAll(table, "div", "problemname") {
		if a := findFirst(div, "a", ""); a != nil {
			code := lastSegment(attr(a, "href"))
			links = append(links, fmt.Sprintf("https://codechef.com/api/contests/%s/problems/%s", c.req.Contest, code))
		}
	}
	return links, nil
}
