package platform

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Tag-to-text replacements applied before residual tags are stripped.
// Order matters: <br> variants first, then block tags, then list items.
var tagRepl = []struct{ old, new string }{
	{"<br>", "\n"},
	{"<br/>", "\n"},
	{"</br>", ""},
	{"</p>", "\n"},
	{"<p>", "\n"},
	{"<div>", "\n"},
	{"</div>", "\n"},
	{"<li>", "\n *"},
}

// LaTeX-ish and HTML-entity sequences normalized to plain text equivalents,
// applied in this order after tag stripping.
var texRepl = []struct{ old, new string }{
	{"$$$", ""},
	{`\le`, "<="},
	{`\ge`, ">="},
	{`\neq`, "!="},
	{"&gt;", ">"},
	{"&lt;", "<"},
	{`\ldots`, "..."},
	{`\dots`, "..."},
	{`\ `, " "},
	{`\cdot`, "*"},
	{`\rightarrow`, "->"},
	{`\leftarrow`, "<-"},
}

var (
	stripTagRe   = regexp.MustCompile(`<[^<]+?>`)
	blankLinesRe = regexp.MustCompile(`\n{2,}`)
	leadingWSRe  = regexp.MustCompile(`^\s*`)
)

// cleanMarkup turns an HTML fragment into plain text: known tags become
// whitespace or markers, residual tags are stripped, then the substitution
// table runs and consecutive blank lines collapse.
func cleanMarkup(s string) string {
	for _, r := range tagRepl {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	s = stripTagRe.ReplaceAllString(s, "")
	for _, r := range texRepl {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return leadingWSRe.ReplaceAllString(s, "")
}

// stripTags removes every tag without any other normalization.
func stripTags(s string) string {
	return stripTagRe.ReplaceAllString(s, "")
}

// --- tag tree helpers over x/net/html ---

func parseHTML(s string) (*html.Node, error) {
	return html.Parse(strings.NewReader(s))
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findAll walks the tree collecting elements by tag name and, when class is
// non-empty, by class attribute.
func findAll(n *html.Node, tag, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && cur.Data == tag && (class == "" || hasClass(cur, class)) {
			out = append(out, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func findFirst(n *html.Node, tag, class string) *html.Node {
	if nodes := findAll(n, tag, class); len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// preContent is the normalized sample text inside a region's <pre> block.
func preContent(div *html.Node) string {
	pre := findFirst(div, "pre", "")
	if pre == nil {
		return ""
	}
	return cleanMarkup(innerHTML(pre))
}

// innerHTML renders the children of a node back to markup, the equivalent
// of decode_contents in the original scraper.
func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// renderNode renders a node including its own tags.
func renderNode(n *html.Node) string {
	var buf bytes.Buffer
	_ = html.Render(&buf, n)
	return buf.String()
}
