package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nikbrunner/filetree/internal/config"
	"github.com/nikbrunner/filetree/internal/logging"
	"github.com/nikbrunner/filetree/internal/logging/events"
)

// Input formats accepted by --input-format.
const (
	InputLines = "lines"
	InputHTML  = "html"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

// Streams are the standard streams a command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Terminal reports whether In is an interactive terminal. Nil means
	// never.
	Terminal func() bool
}

func (s Streams) isTerminal() bool {
	return s.Terminal != nil && s.Terminal()
}

type options struct {
	tui         bool
	format      string
	inputFormat string
	filter      string
	configPath  string
	logFile     string
	trace       bool
}

// NewRootCommand builds the filetree command bound to streams. environ
// supplies FILETREE_* overrides.
func NewRootCommand(streams Streams, environ []string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "filetree",
		Version: "dev",
		Short:   "Render slash-separated paths as a directory tree",
		Long: `filetree reads newline-separated paths and prints them as a box-drawn
directory tree.

  cat files.txt | filetree
  git ls-files | filetree --filter internal
  filetree --tui`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, environ)
			if err != nil {
				return err
			}
			if err := validateInputFormat(opts.inputFormat); err != nil {
				return err
			}

			logging.Configure(cfg.Logging.FilePath)
			logging.SetTraceEnabled(cfg.Logging.Trace)
			events.App.Start(map[string]interface{}{
				"tui":         opts.tui,
				"format":      cfg.Output.Format,
				"inputFormat": opts.inputFormat,
				"filter":      opts.filter,
			})

			if opts.tui {
				err = runInteractive(streams, cfg, opts)
			} else {
				err = runBatch(streams, cfg, opts)
			}
			if err != nil {
				logging.Error(err)
			}
			events.App.Exit(err)
			return err
		},
	}

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	flags := cmd.Flags()
	flags.BoolVar(&opts.tui, "tui", false, "Edit the tree interactively")
	flags.StringVar(&opts.format, "format", config.FormatText, "Batch output format (text or html)")
	flags.StringVar(&opts.inputFormat, "input-format", InputLines, "Input format (lines or html)")
	flags.StringVar(&opts.filter, "filter", "", "Keep only paths that fuzzy-match `query`")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file (default ~/.local/state/filetree/filetree.log)")
	flags.BoolVar(&opts.trace, "trace", false, "Write structured trace entries to the log file")

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/filetree/config.yaml)")

	cmd.AddCommand(newConfigCommand(streams, opts))
	return cmd
}

func validateInputFormat(format string) error {
	switch format {
	case InputLines, InputHTML:
		return nil
	default:
		return fmt.Errorf("unknown input format %q (want %s or %s)", format, InputLines, InputHTML)
	}
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Execute runs filetree against the process's standard streams.
func Execute(version string) error {
	cmd := NewRootCommand(Streams{
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Terminal: stdinIsTerminal,
	}, os.Environ())
	if version != "" {
		cmd.Version = version
		cmd.SetVersionTemplate("{{.Version}}\n")
	}
	return cmd.Execute()
}
