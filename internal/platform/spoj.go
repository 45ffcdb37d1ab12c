package platform

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sempr/acedit-go/internal/cache"
	"github.com/sempr/acedit-go/internal/fetch"
	"github.com/sempr/acedit-go/pkg/models"
)

// Same paired-replacement strategy as codechef, but spoj pages carry
// carriage returns, and the tail after the Output marker runs to the end of
// the block rather than to a closing </pre>.
var (
	spojPreRe    = regexp.MustCompile(`(?s)<pre>.*?</pre>`)
	spojInputRe  = regexp.MustCompile(`(?s)(<pre>.*<b>Input:?</b>:?|<b>Output:?</b>.*)`)
	spojOutputRe = regexp.MustCompile(`(?s)(<pre>.*<b>Output:?</b>:?|</pre>)`)
)

// spoj scrapes spoj.com. The judge is case-insensitive about problem codes,
// so the code is uppercased on construction; there is no contest concept at
// all, which also flattens the cache path for this site.
type spoj struct {
	base
}

func newSpoj(req models.Request, store *cache.Store, client *fetch.Client) *spoj {
	req.Problem = strings.ToUpper(req.Problem)
	req.Contest = ""
	return &spoj{base{req: req, store: store, client: client}}
}

func (s *spoj) ScrapeProblem(ctx context.Context) error {
	fmt.Printf("Fetching problem %s from SPOJ...\n", s.req.Problem)
	resp, err := s.client.Get(ctx, "http://spoj.com/problems/"+s.req.Problem)
	if err != nil {
		return err
	}
	inputs, outputs, err := s.parse(resp)
	if err != nil {
		return s.notFound("Problem")
	}
	if err := s.store.Store(s.req.Site, s.req.Contest, s.req.Problem, inputs, outputs, ""); err != nil {
		return err
	}
	fmt.Println("Done.")
	return nil
}

// ScrapeContest exists only to satisfy the capability set; spoj has no
// contests to enumerate.
func (s *spoj) ScrapeContest(ctx context.Context) error {
	return errors.New("spoj does not have contests")
}

func (s *spoj) parse(resp *fetch.Response) (inputs, outputs []string, err error) {
	blocks := spojPreRe.FindAllString(string(resp.Body), -1)
	if len(blocks) == 0 {
		return nil, nil, ErrNotFound
	}
	for _, block := range blocks {
		inp := stripTags(spojInputRe.ReplaceAllString(block, ""))
		out := stripTags(spojOutputRe.ReplaceAllString(block, ""))
		inputs = append(inputs, strings.TrimSpace(inp))
		outputs = append(outputs, strings.TrimSpace(out))
	}
	return inputs, outputs, nil
}
