package importer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTML extracts paths from nested HTML lists. Both plain <ul>/<li>
// trees and Netscape bookmark files (<DL>/<DT>, folders as <H3>, entries
// as <A>) are understood. Each leaf item becomes one path joined with the
// names of the lists that contain it; folders are implied by their items.
func ParseHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	var paths []string
	var stack []string // enclosing folder names
	pending := ""      // folder name waiting for its list

	emit := func(name string) {
		name = strings.TrimSuffix(strings.TrimSpace(name), "/")
		if name == "" {
			return
		}
		paths = append(paths, strings.Join(append(append([]string{}, stack...), name), "/"))
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				pending = strings.TrimSuffix(getTextContent(n), "/")
				return

			case "a":
				title := getTextContent(n)
				if title == "" {
					title = getAttr(n, "href")
				}
				emit(title)
				return

			case "li":
				label := directText(n)
				if hasList(n) {
					pending = strings.TrimSuffix(label, "/")
				} else {
					emit(label)
				}

			case "ul", "ol", "dl":
				pushed := false
				if pending != "" {
					stack = append(stack, pending)
					pending = ""
					pushed = true
				}
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}
				if pushed {
					stack = stack[:len(stack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return paths, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// directText returns the text of n's own text children, ignoring nested
// elements.
func directText(n *html.Node) string {
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			text.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(text.String())
}

func hasList(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch strings.ToLower(c.Data) {
		case "ul", "ol", "dl":
			return true
		}
	}
	return false
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
