package exporter

import (
	"io"

	"github.com/nikbrunner/filetree/internal/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes the trie as a document of nested <ul> lists. Directories are
// list items labelled "name/" holding their own list, so the output reads
// back through importer.ParseHTML into the same tree.
func HTML(w io.Writer, root *tree.Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html)
	head := element(atom.Head)
	title := element(atom.Title)
	title.AppendChild(text("filetree"))
	head.AppendChild(title)
	body := element(atom.Body)
	htmlEl.AppendChild(head)
	htmlEl.AppendChild(body)
	doc.AppendChild(htmlEl)

	if root.Len() > 0 {
		body.AppendChild(list(root))
	}

	return html.Render(w, doc)
}

func list(n *tree.Node) *html.Node {
	ul := element(atom.Ul)
	for _, name := range n.Names() {
		child := n.Child(name)
		li := element(atom.Li)
		if child.IsDir() {
			li.AppendChild(text(name + "/"))
			li.AppendChild(list(child))
		} else {
			li.AppendChild(text(name))
		}
		ul.AppendChild(li)
	}
	return ul
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
