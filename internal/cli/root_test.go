package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/filetree/internal/importer"
	"github.com/nikbrunner/filetree/internal/logging"
	"github.com/nikbrunner/filetree/internal/tui"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

type result struct {
	out string
	err string
}

// run executes the root command with an isolated config and log file.
func run(t *testing.T, in string, terminal bool, environ []string, args ...string) (result, error) {
	t.Helper()
	return runReader(t, strings.NewReader(in), terminal, environ, args...)
}

func runReader(t *testing.T, in io.Reader, terminal bool, environ []string, args ...string) (result, error) {
	t.Helper()
	dir := t.TempDir()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(Streams{
		In:       in,
		Out:      &out,
		Err:      &errOut,
		Terminal: func() bool { return terminal },
	}, environ)

	base := []string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--log-file", filepath.Join(dir, "filetree.log"),
	}
	cmd.SetArgs(append(base, args...))

	err := cmd.Execute()
	return result{out: out.String(), err: errOut.String()}, err
}

func TestBatch_PrintsTree(t *testing.T) {
	res, err := run(t, "src/main.go\n\n  README.md  \nsrc/tree/node.go\n", false, nil)

	assert.NilError(t, err)
	assert.Equal(t, res.out, "├── README.md\n└── src/\n    ├── main.go\n    └── tree/\n        └── node.go\n")
	assert.Equal(t, res.err, "")
}

func TestBatch_NoInputWritesNothing(t *testing.T) {
	res, err := run(t, "\n  \n///\n", false, nil)

	assert.NilError(t, err)
	assert.Equal(t, res.out, "")
	assert.Equal(t, res.err, "")
}

func TestBatch_UsageOnTerminal(t *testing.T) {
	res, err := run(t, "", true, nil)

	assert.NilError(t, err)
	assert.Equal(t, res.out, "")
	assert.Check(t, is.Contains(res.err, "Usage:"))
	assert.Check(t, is.Contains(res.err, "cat files.txt | filetree"))
	assert.Check(t, is.Contains(res.err, "filetree --tui"))
}

func TestBatch_ReadError(t *testing.T) {
	res, err := runReader(t, failingReader{}, false, nil)

	assert.Assert(t, errors.Is(err, importer.ErrRead))
	assert.ErrorContains(t, err, "device gone")
	assert.Equal(t, res.out, "")
}

func TestBatch_HTMLOutput(t *testing.T) {
	res, err := run(t, "a/b\nc\n", false, nil, "--format", "html")

	assert.NilError(t, err)
	assert.Check(t, is.Contains(res.out, "<ul><li>a/<ul><li>b</li></ul></li><li>c</li></ul>"))
}

func TestBatch_FormatFromEnv(t *testing.T) {
	res, err := run(t, "a\n", false, []string{"FILETREE_FORMAT=html"})

	assert.NilError(t, err)
	assert.Check(t, is.Contains(res.out, "<li>a</li>"))
}

func TestBatch_FlagOverridesEnv(t *testing.T) {
	res, err := run(t, "a\n", false, []string{"FILETREE_FORMAT=html"}, "--format", "text")

	assert.NilError(t, err)
	assert.Equal(t, res.out, "└── a\n")
}

func TestBatch_HTMLInput(t *testing.T) {
	doc := `<ul><li>docs/<ul><li>guide.md</li></ul></li><li>go.mod</li></ul>`
	res, err := run(t, doc, false, nil, "--input-format", "html")

	assert.NilError(t, err)
	assert.Equal(t, res.out, "├── docs/\n│   └── guide.md\n└── go.mod\n")
}

func TestBatch_Filter(t *testing.T) {
	res, err := run(t, "internal/tree/node.go\ncmd/main.go\ninternal/model/store.go\n", false, nil, "--filter", "tree/n")

	assert.NilError(t, err)
	assert.Equal(t, res.out, "└── internal/\n    └── tree/\n        └── node.go\n")
}

func TestRoot_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown output format", []string{"--format", "json"}, "invalid config"},
		{"unknown input format", []string{"--input-format", "csv"}, "unknown input format"},
		{"positional args", []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "a\n", false, nil, tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRoot_TraceWritesLog(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "trace.log")
	t.Cleanup(func() { logging.SetTraceEnabled(false) })

	_, err := run(t, "a\n", false, nil, "--log-file", logFile, "--trace")
	assert.NilError(t, err)

	data, err := os.ReadFile(logFile)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(data), `"event":"app.start"`))
	assert.Check(t, is.Contains(string(data), `"event":"app.batch"`))
}

// captureProgram replaces the bubbletea loop for the duration of a test.
func captureProgram(t *testing.T) (*tui.App, *bool) {
	t.Helper()
	var captured tui.App
	var piped bool
	orig := runProgram
	runProgram = func(app tui.App, p bool) error {
		captured = app
		piped = p
		return nil
	}
	t.Cleanup(func() { runProgram = orig })
	return &captured, &piped
}

func TestInteractive_PreloadsPipedInput(t *testing.T) {
	app, piped := captureProgram(t)

	_, err := run(t, "a/b\na/c\n", false, nil, "--tui")

	assert.NilError(t, err)
	assert.Assert(t, *piped)
	assert.DeepEqual(t, app.Session().Paths(), []string{"a/b", "a/c"})
	assert.Equal(t, len(app.Session().Rows()), 3)
}

func TestInteractive_TerminalStartsEmpty(t *testing.T) {
	app, piped := captureProgram(t)

	_, err := run(t, "ignored\n", true, nil, "--tui")

	assert.NilError(t, err)
	assert.Assert(t, !*piped)
	assert.Equal(t, len(app.Session().Paths()), 0)
}

func TestInteractive_ReadErrorKeepsGoing(t *testing.T) {
	app, _ := captureProgram(t)

	res, err := runReader(t, failingReader{}, false, nil, "--tui")

	assert.NilError(t, err)
	assert.Check(t, is.Contains(res.err, "device gone"))
	assert.Equal(t, len(app.Session().Paths()), 0)
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	var out bytes.Buffer
	cmd := NewRootCommand(Streams{Out: &out, Err: &out}, nil)
	cmd.SetArgs([]string{"config", "init", "--config", path})
	assert.NilError(t, cmd.Execute())
	assert.Check(t, is.Contains(out.String(), "Wrote "+path))

	out.Reset()
	cmd = NewRootCommand(Streams{Out: &out, Err: &out}, nil)
	cmd.SetArgs([]string{"config", "show", "--config", path})
	assert.NilError(t, cmd.Execute())
	assert.Check(t, is.Contains(out.String(), "format: text"))
	assert.Check(t, is.Contains(out.String(), "showHints: true"))

	cmd = NewRootCommand(Streams{Out: &out, Err: &out}, nil)
	cmd.SetArgs([]string{"config", "init", "--config", path})
	assert.ErrorContains(t, cmd.Execute(), "already exists")
}
