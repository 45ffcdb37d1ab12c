package acquire

import (
	"context"
	"testing"
	"time"

	"github.com/sempr/acedit-go/internal/cache"
	"github.com/sempr/acedit-go/internal/fetch"
	"github.com/sempr/acedit-go/pkg/constants"
	"github.com/sempr/acedit-go/pkg/models"
)

// The client timeout is kept tiny: a cache hit must return without any
// network traffic, so if a test below ever reaches the transport it fails
// fast instead of hanging.
func newOrchForTest(t *testing.T) *Orchestrator {
	t.Helper()
	return New(cache.NewStore(t.TempDir()), fetch.NewClient(50*time.Millisecond))
}

func TestProblemCacheHitSkipsDownload(t *testing.T) {
	o := newOrchForTest(t)
	if err := o.Store.Store(constants.SiteCodeforces, "4", "A", []string{"8"}, []string{"YES"}, ""); err != nil {
		t.Fatal(err)
	}
	req := models.Request{Site: constants.SiteCodeforces, Contest: "4", Problem: "A"}
	if err := o.Problem(context.Background(), req); err != nil {
		t.Fatalf("cached problem must not be re-fetched: %v", err)
	}
}

func TestProblemCacheHitUsesNormalizedCode(t *testing.T) {
	o := newOrchForTest(t)
	// spoj 缓存按大写题号存储
	if err := o.Store.Store(constants.SiteSpoj, "", "PRIME1", []string{"i"}, []string{"o"}, ""); err != nil {
		t.Fatal(err)
	}
	req := models.Request{Site: constants.SiteSpoj, Problem: "prime1"}
	if err := o.Problem(context.Background(), req); err != nil {
		t.Fatalf("lowercase code must hit the uppercase cache entry: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	o := newOrchForTest(t)
	tests := []struct {
		name string
		in   models.Request
		want models.Request
	}{
		{
			name: "codeforces unchanged",
			in:   models.Request{Site: constants.SiteCodeforces, Contest: "4", Problem: "A"},
			want: models.Request{Site: constants.SiteCodeforces, Contest: "4", Problem: "A"},
		},
		{
			name: "spoj uppercased and contest dropped",
			in:   models.Request{Site: constants.SiteSpoj, Contest: "x", Problem: "prime1"},
			want: models.Request{Site: constants.SiteSpoj, Problem: "PRIME1"},
		},
		{
			name: "hackerrank slugified",
			in:   models.Request{Site: constants.SiteHackerrank, Contest: "master", Problem: "Solve Me First"},
			want: models.Request{Site: constants.SiteHackerrank, Contest: "master", Problem: "solve-me-first"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProblemUnsupportedSite(t *testing.T) {
	o := newOrchForTest(t)
	req := models.Request{Site: "topcoder", Contest: "1", Problem: "a"}
	if err := o.Problem(context.Background(), req); err == nil {
		t.Fatal("expected error for unsupported site")
	}
}

func TestContestRejectsSpoj(t *testing.T) {
	o := newOrchForTest(t)
	req := models.Request{Site: constants.SiteSpoj}
	if err := o.Contest(context.Background(), req); err == nil {
		t.Fatal("spoj contest acquisition must fail")
	}
}
