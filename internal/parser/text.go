package parser

import (
	"strings"

	"github.com/aleister1102/paramindex/internal/models"
	"golang.org/x/net/html"
)

// normalizeSpace trims s and collapses internal whitespace runs to one space.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ownText returns the text of n excluding any nested list subtrees, trimmed.
// For a URL item carrying its parameter list as a child this yields only the URL.
func ownText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				b.WriteString(c.Data)
			case isList(c):
				continue
			case c.Type == html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// splitParameterLine splits a line on the first '='. A line without '='
// becomes a key with an empty value.
func splitParameterLine(line string) models.Parameter {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return models.Parameter{Key: strings.TrimSpace(line)}
	}
	return models.Parameter{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)}
}
