package platform

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sempr/acedit-go/internal/cache"
	"github.com/sempr/acedit-go/internal/fetch"
	"github.com/sempr/acedit-go/pkg/models"
)

// gymThreshold splits contest ids between the regular contest namespace and
// the gym namespace.
const gymThreshold = 100000

// codeforces scrapes codeforces.com. The locale is pinned so that page
// structure stays stable regardless of the user's region.
type codeforces struct {
	base
	baseURL string
	locale  string
}

func newCodeforces(req models.Request, store *cache.Store, client *fetch.Client) *codeforces {
	return &codeforces{
		base:    base{req: req, store: store, client: client},
		baseURL: "https://codeforces.com",
		locale:  "locale=ru",
	}
}

// namespace routes numeric contest ids to "contest" or "gym".
func (c *codeforces) namespace() string {
	id, err := strconv.Atoi(c.req.Contest)
	if err != nil || id <= gymThreshold {
		return "contest"
	}
	return "gym"
}

func (c *codeforces) ScrapeProblem(ctx context.Context) error {
	fmt.Printf("Fetching problem %s-%s from Codeforces...\n", c.req.Contest, c.req.Problem)
	url := fmt.Sprintf("%s/%s/%s/problem/%s?%s", c.baseURL, c.namespace(), c.req.Contest, c.req.Problem, c.locale)
	resp, err := c.client.Get(ctx, url)
	if err != nil {
		return err
	}
	inputs, outputs, statement, err := c.parse(resp)
	if err != nil {
		return c.notFound("Problem")
	}
	if err := c.store.Store(c.req.Site, c.req.Contest, c.req.Problem, inputs, outputs, statement); err != nil {
		return err
	}
	fmt.Println("Done.")
	return nil
}

func (c *codeforces) ScrapeContest(ctx context.Context) error {
	fmt.Printf("Checking problems available for contest %s...\n", c.req.Contest)
	url := fmt.Sprintf("%s/%s/%s?%s", c.baseURL, c.namespace(), c.req.Contest, c.locale)
	resp, err := c.client.Get(ctx, url)
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

// handleResponse stores the cases of one problem page fetched in a batch.
// The problem code comes from the resolved URL: the contest page links a
// generic id which the judge redirects to the canonical per-problem code.
func (c *codeforces) handleResponse(resp *fetch.Response) error {
	inputs, outputs, statement, err := c.parse(resp)
	if err != nil {
		return err
	}
	problem := lastSegment(resp.EffectiveURL)
	if _, err := c.store.Exists(c.req.Site, c.req.Contest, problem); err != nil {
		return err
	}
	return c.store.Store(c.req.Site, c.req.Contest, problem, inputs, outputs, statement)
}

// parse extracts the marked input/output regions and the statement block.
func (c *codeforces) parse(resp *fetch.Response) (inputs, outputs []string, statement string, err error) {
	doc, err := parseHTML(string(resp.Body))
	if err != nil {
		return nil, nil, "", err
	}
	inputDivs := findAll(doc, "div", "input")
	outputDivs := findAll(doc, "div", "output")
	if len(inputDivs) == 0 || len(outputDivs) == 0 {
		return nil, nil, "", ErrNotFound
	}
	for _, div := range inputDivs {
		inputs = append(inputs, preContent(div))
	}
	for _, div := range outputDivs {
		outputs = append(outputs, preContent(div))
	}
	if st := findFirst(doc, "div", "problem-statement"); st != nil {
		statement = cleanMarkup(innerHTML(st))
	}
	return inputs, outputs, statement, nil
}

// problemLinks enumerates the per-problem pages of a contest.
func (c *codeforces) problemLinks(resp *fetch.Response) ([]string, error) {
	doc, err := parseHTML(string(resp.Body))
	if err != nil {
		return nil, err
	}
	table := findFirst(doc, "table", "problems")
	if table == nil {
		return nil, ErrNotFound
	}
	var links []string
	for _, td := range findAll(table, "td", "id") {
		if a := findFirst(td, "a", ""); a != nil {
			links = append(links, fmt.Sprintf("%s%s?%s", c.baseURL, attr(a, "href"), c.locale))
		}
	}
	return links, nil
}
