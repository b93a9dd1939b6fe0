package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

// findHeading returns the first heading whose normalised text contains marker.
func findHeading(doc *goquery.Document, marker string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find(headingSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(normalizeSpace(s.Text()), marker) {
			found = s
			return false
		}
		return true
	})
	return found
}

// nextHeadingOfSameTag returns the first heading after heading, in document
// order, sharing its tag name.
func nextHeadingOfSameTag(doc *goquery.Document, heading *goquery.Selection) *html.Node {
	target := heading.Get(0)
	passed := false
	var next *html.Node
	doc.Find(goquery.NodeName(heading)).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		node := s.Get(0)
		if node == target {
			passed = true
			return true
		}
		if passed {
			next = node
			return false
		}
		return true
	})
	return next
}

// truncateFrom detaches node and every node that follows it in document
// order, so later lookups cannot reach content of the next section.
func truncateFrom(node *html.Node) {
	for n := node; n != nil && n.Parent != nil; n = n.Parent {
		for sib := n.NextSibling; sib != nil; {
			following := sib.NextSibling
			n.Parent.RemoveChild(sib)
			sib = following
		}
	}
	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
}

// listAfterHeading returns the first list element sibling after heading.
// A sibling heading with the same tag ends the search.
func listAfterHeading(heading *goquery.Selection) *goquery.Selection {
	tag := goquery.NodeName(heading)
	var list *goquery.Selection
	heading.NextAll().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		switch name := goquery.NodeName(s); {
		case name == "ul" || name == "ol":
			list = s
			return false
		case name == tag:
			return false
		}
		return true
	})
	return list
}

// firstBodyList returns the first list element in the body, which in
// document order is always a top-level one.
func firstBodyList(doc *goquery.Document) *goquery.Selection {
	list := doc.Find("body").Find("ul, ol").First()
	if list.Length() == 0 {
		return nil
	}
	return list
}

func isList(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol")
}
