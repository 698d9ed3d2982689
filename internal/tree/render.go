package tree

import "strings"

const (
	connectorMid  = "├── "
	connectorLast = "└── "
	indentPipe    = "│   "
	indentBlank   = "    "
)

// Row is one rendered line of the tree together with the slash-joined path
// of the node it represents.
type Row struct {
	Line string
	Path string
}

// Render walks the trie depth-first, children in lexicographic order, and
// returns one Row per node below root.
func Render(root *Node) []Row {
	var rows []Row
	render(root, "", "", &rows)
	return rows
}

func render(n *Node, prefix, current string, rows *[]Row) {
	names := n.Names()
	for i, name := range names {
		child := n.children[name]
		last := i == len(names)-1

		fullPath := name
		if current != "" {
			fullPath = current + "/" + name
		}

		connector := connectorMid
		indent := indentPipe
		if last {
			connector = connectorLast
			indent = indentBlank
		}

		display := name
		if child.IsDir() {
			display += "/"
		}

		*rows = append(*rows, Row{Line: prefix + connector + display, Path: fullPath})
		render(child, prefix+indent, fullPath, rows)
	}
}

// Lines returns the display lines of rows.
func Lines(rows []Row) []string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.Line
	}
	return lines
}

// String joins the display lines with newlines, without a trailing newline.
func String(rows []Row) string {
	return strings.Join(Lines(rows), "\n")
}
