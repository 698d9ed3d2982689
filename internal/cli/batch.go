package cli

import (
	"fmt"
	"io"

	"github.com/nikbrunner/filetree/internal/config"
	"github.com/nikbrunner/filetree/internal/exporter"
	"github.com/nikbrunner/filetree/internal/importer"
	"github.com/nikbrunner/filetree/internal/logging/events"
	"github.com/nikbrunner/filetree/internal/model"
	"github.com/nikbrunner/filetree/internal/search"
)

// runBatch reads every path from streams.In and prints the tree. Nothing is
// written when no path is accepted; a terminal on stdin gets the usage
// notice instead.
func runBatch(streams Streams, cfg config.Config, opts *options) error {
	paths, err := readInput(streams.In, opts.inputFormat)
	if err != nil {
		return err
	}
	store := loadStore(paths, opts.filter)
	events.App.Batch(store.Len(), cfg.Output.Format)

	if store.Len() == 0 {
		if streams.isTerminal() {
			printUsage(streams.Err)
		}
		return nil
	}

	root, rows := store.Rebuild()
	switch cfg.Output.Format {
	case config.FormatHTML:
		return exporter.HTML(streams.Out, root)
	default:
		return exporter.Text(streams.Out, rows)
	}
}

func readInput(r io.Reader, format string) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	if format == InputHTML {
		return importer.ParseHTML(r)
	}
	return importer.ReadLines(r)
}

// loadStore keeps the paths matching filter and adds them in input order.
func loadStore(paths []string, filter string) *model.Store {
	store := model.NewStore()
	for _, p := range search.FilterPaths(paths, filter) {
		store.Add(p)
	}
	return store
}

func printUsage(w io.Writer) {
	_, _ = headingColor.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  1. Pipe data: cat files.txt | filetree")
	fmt.Fprintln(w, "  2. TUI Mode:  filetree --tui")
}
