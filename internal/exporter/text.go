package exporter

import (
	"bufio"
	"io"

	"github.com/nikbrunner/filetree/internal/tree"
)

// Text writes the display line of each row followed by a newline.
// Nothing is written for an empty tree.
func Text(w io.Writer, rows []tree.Row) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := bw.WriteString(r.Line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
