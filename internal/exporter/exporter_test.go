package exporter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nikbrunner/filetree/internal/exporter"
	"github.com/nikbrunner/filetree/internal/importer"
	"github.com/nikbrunner/filetree/internal/tree"
	"gotest.tools/v3/assert"
)

func TestText(t *testing.T) {
	var buf bytes.Buffer
	rows := tree.Render(tree.Build([]string{"a/b", "a/c", "d"}))

	assert.NilError(t, exporter.Text(&buf, rows))
	assert.Equal(t, buf.String(), "├── a/\n│   ├── b\n│   └── c\n└── d\n")
}

func TestText_EmptyWritesNothing(t *testing.T) {
	var buf bytes.Buffer

	assert.NilError(t, exporter.Text(&buf, nil))
	assert.Equal(t, buf.Len(), 0)
}

func TestHTML_Structure(t *testing.T) {
	var buf bytes.Buffer
	root := tree.Build([]string{"a/b", "a/c", "d"})

	assert.NilError(t, exporter.HTML(&buf, root))

	out := buf.String()
	assert.Assert(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Assert(t, strings.Contains(out, "<ul><li>a/<ul><li>b</li><li>c</li></ul></li><li>d</li></ul>"), out)
}

func TestHTML_EscapesNames(t *testing.T) {
	var buf bytes.Buffer
	root := tree.Build([]string{"<script>&"})

	assert.NilError(t, exporter.HTML(&buf, root))
	assert.Assert(t, strings.Contains(buf.String(), "<li>&lt;script&gt;&amp;</li>"))
}

func TestHTML_RoundTrip(t *testing.T) {
	paths := []string{"src/tree/node.go", "src/main.go", "README.md", "docs/a b.md"}
	root := tree.Build(paths)

	var buf bytes.Buffer
	assert.NilError(t, exporter.HTML(&buf, root))

	parsed, err := importer.ParseHTML(&buf)
	assert.NilError(t, err)
	assert.DeepEqual(t, tree.Render(tree.Build(parsed)), tree.Render(root))
}
