// Package htmltext extracts plain text from HTML documents.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Extract parses HTML from r and returns its visible text content with
// whitespace collapsed. Script and style contents are skipped.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(buf.String()), " "), nil
}

// ExtractString is Extract over an in-memory document.
func ExtractString(s string) (string, error) {
	return Extract(strings.NewReader(s))
}
