package platform

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/sempr/acedit-go/internal/cache"
	"github.com/sempr/acedit-go/internal/fetch"
	"github.com/sempr/acedit-go/pkg/constants"
	"github.com/sempr/acedit-go/pkg/models"
)

func newHRForTest(t *testing.T, problem string) *hackerrank {
	t.Helper()
	req := models.Request{Site: constants.SiteHackerrank, Contest: "master", Problem: problem}
	return newHackerrank(req, cache.NewStore(t.TempDir()), fetch.NewClient(0))
}

func hrBody(t *testing.T, bodyHTML string) []byte {
	t.Helper()
	data, err := json.Marshal(map[string]any{"model": map[string]string{"body_html": bodyHTML}})
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestHackerrankSlugifiesProblem(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Solve Me First", "solve-me-first"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
	}
	for _, tt := range tests {
		h := newHRForTest(t, tt.in)
		if got := h.Ref().Problem; got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHackerrankParsePlainPre(t *testing.T) {
	body := `<div class="challenge_problem_statement">sum a and b</div>
<div class="challenge_sample_input_body challenge_sample_input"><pre><code>2
3</code></pre></div>
<div class="challenge_sample_output_body challenge_sample_output"><pre><code>5</code></pre></div>`
	h := newHRForTest(t, "solve-me-first")
	inputs, outputs, err := h.parse(&fetch.Response{Body: hrBody(t, body)})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(inputs) != 1 || inputs[0] != "2\n3" {
		t.Fatalf("inputs = %q", inputs)
	}
	if len(outputs) != 1 || outputs[0] != "5" {
		t.Fatalf("outputs = %q", outputs)
	}
}

func TestHackerrankParseSpanWrappedLines(t *testing.T) {
	body := `<div class="challenge_sample_input"><pre><span>1 2</span><span>3 4</span></pre></div>
<div class="challenge_sample_output"><pre><span>3</span><span>7</span></pre></div>`
	h := newHRForTest(t, "x")
	inputs, outputs, err := h.parse(&fetch.Response{Body: hrBody(t, body)})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// 每行一个 span，按行拼接
	if inputs[0] != "1 2\n3 4" {
		t.Errorf("input = %q, want span lines joined with newlines", inputs[0])
	}
	if outputs[0] != "3\n7" {
		t.Errorf("output = %q", outputs[0])
	}
}

func TestHackerrankParseNotFound(t *testing.T) {
	h := newHRForTest(t, "x")
	for _, body := range []string{"<html>login page</html>", `{"model":null}`, `{"model":{"body_html":""}}`} {
		_, _, err := h.parse(&fetch.Response{Body: []byte(body)})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("parse(%q) err = %v, want ErrNotFound", body, err)
		}
	}
}

func TestHackerrankProblemLinks(t *testing.T) {
	payload := `{"models":[{"slug":"solve-me-first"},{"slug":"simple-array-sum"}]}`
	h := newHRForTest(t, "")
	links, err := h.problemLinks(&fetch.Response{Body: []byte(payload)})
	if err != nil {
		t.Fatalf("problemLinks: %v", err)
	}
	want := []string{
		"https://www.hackerrank.com/rest/contests/master/challenges/solve-me-first",
		"https://www.hackerrank.com/rest/contests/master/challenges/simple-array-sum",
	}
	if len(links) != 2 || links[0] != want[0] || links[1] != want[1] {
		t.Fatalf("links = %v, want %v", links, want)
	}

	if _, err := h.problemLinks(&fetch.Response{Body: []byte(`{"models":null}`)}); !errors.Is(err, ErrNotFound) {
		t.Errorf("nil models err = %v, want ErrNotFound", err)
	}
}
