package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Range is a points-cost interval published on a draft page. A single fixed
// cost is represented as Low == High. Values are carried exactly as the page
// published them.
type Range struct {
	Low  int
	High int
}

// Draft pages render the cost line in one of two shapes: an interval
// ("Price Range: 8 - 9 points") or a single fixed cost ("Price Range: 5
// points"). Both are matched against flattened text, which keeps the scan
// tolerant of markup and layout drift inside the phrase.
var (
	rangeFormRe  = regexp.MustCompile(`(?i)Price Range:\s*(\d+)\s*-\s*(\d+)\s*points`)
	singleFormRe = regexp.MustCompile(`(?i)Price Range:\s*(\d+)\s*points`)
)

// PriceRange flattens markup to plain text and scans it for a price-range
// phrase. The interval form is tried first, unconditionally; the single form
// is consulted only when no interval appears anywhere in the text. Within a
// form, the first match in text order wins. A false return means the page
// does not carry the phrase, which is an ordinary absence, not an error.
func PriceRange(markup string) (Range, bool) {
	text := Text(markup)
	if m := rangeFormRe.FindStringSubmatch(text); m != nil {
		low, lerr := strconv.Atoi(m[1])
		high, herr := strconv.Atoi(m[2])
		if lerr == nil && herr == nil {
			return Range{Low: low, High: high}, true
		}
	}
	if m := singleFormRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return Range{Low: v, High: v}, true
		}
	}
	return Range{}, false
}

// Text flattens HTML markup into whitespace-normalized plain text: tags are
// stripped, script/style/noscript/iframe subtrees are dropped, and text nodes
// are joined with single spaces. Case is preserved. The parser is lenient
// with broken markup, so this effectively never fails; a document the parser
// cannot make sense of yields "".
func Text(markup string) string {
	node, err := html.Parse(strings.NewReader(markup))
	if err != nil || node == nil {
		return ""
	}
	var b strings.Builder
	collectText(&b, node)
	return b.String()
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "iframe":
			return
		}
	}
	if n.Type == html.TextNode {
		if t := collapseSpaces(n.Data); t != "" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// collapseSpaces trims s and squashes every Unicode whitespace run inside it
// to a single ASCII space, so the pattern literals above can assume single
// spacing between words.
func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := true // drop leading whitespace
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}
