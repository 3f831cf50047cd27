package converter

// htmlclean.go — DOM cleanup applied before HTML → Markdown conversion.
//
// Word and CMS exports bury content in scripts, comments, empty wrappers, and
// layout tables. Cleaning works in place on the parsed DOM so document order
// is preserved: drop script/style subtrees and comments, unwrap layout
// wrapper tables while keeping real data tables, then prune elements left
// with no content.

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// prunableTags are elements removed when they contain no text and no image.
// Table cells are exempt: an empty cell still carries column position.
const prunableTags = "p, div, span, ul, ol, li, b, i, strong, em, a, section, article, header, footer"

// cleanHTML returns a cleaned copy of the document's body HTML.
func cleanHTML(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, iframe").Remove()
	for _, n := range doc.Nodes {
		stripComments(n)
	}
	unwrapLayoutTables(doc)
	pruneEmpty(doc)

	if body := doc.Find("body"); body.Length() > 0 {
		return body.Html()
	}
	return doc.Html()
}

func stripComments(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			stripComments(c)
		}
		c = next
	}
}

// unwrapLayoutTables replaces wrapper tables with their cell contents.
// Unwrapping an outer table can expose an inner one, so scan again until no
// wrapper remains.
func unwrapLayoutTables(doc *goquery.Document) {
	for {
		var wrapper *goquery.Selection
		doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
			if isWrapperTable(t) {
				wrapper = t
				return false
			}
			return true
		})
		if wrapper == nil {
			return
		}

		// Only this table's own cells; cells of a nested table come along
		// inside their parent cell's HTML.
		var sb strings.Builder
		wrapper.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			if cell.Closest("table").Get(0) != wrapper.Get(0) {
				return
			}
			if h, err := cell.Html(); err == nil {
				sb.WriteString(h)
			}
		})
		wrapper.ReplaceWithHtml("<div>" + sb.String() + "</div>")
	}
}

// isWrapperTable distinguishes layout tables from data tables. Word exports
// use single-column or nested tables to shape the page; real data tables have
// a grid of short cells.
func isWrapperTable(t *goquery.Selection) bool {
	if t.Find("table").Length() > 0 {
		return true
	}
	rows := t.Find("tr")
	if rows.Length() <= 1 {
		return true
	}
	maxCells := 0
	rows.Each(func(_ int, r *goquery.Selection) {
		if n := r.ChildrenFiltered("td, th").Length(); n > maxCells {
			maxCells = n
		}
	})
	if maxCells <= 1 {
		return true
	}
	// Block-level content inside cells means the table is shaping layout.
	return t.Find("h1, h2, h3, h4, h5, h6, ul, ol").Length() > 0
}

// pruneEmpty removes prunable elements with no visible content, repeating
// until the tree is stable since removing a child can empty its parent.
func pruneEmpty(doc *goquery.Document) {
	for {
		removed := false
		doc.Find(prunableTags).Each(func(_ int, s *goquery.Selection) {
			if strings.TrimSpace(s.Text()) == "" && s.Find("img, br").Length() == 0 {
				s.Remove()
				removed = true
			}
		})
		if !removed {
			return
		}
	}
}
