package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/filetree/internal/config"
)

// resolveConfig layers the config file, FILETREE_* variables and explicitly
// set flags, in that order.
func resolveConfig(cmd *cobra.Command, opts *options, environ []string) (config.Config, error) {
	path, err := configPath(opts)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	cfg = config.ApplyEnv(cfg, environ)

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("log-file") {
		cfg.Logging.FilePath = opts.logFile
	}
	if flags.Changed("trace") {
		cfg.Logging.Trace = opts.trace
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func configPath(opts *options) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	path, err := config.DefaultConfigFilePath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return path, nil
}

func newConfigCommand(streams Streams, opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
		Args:  cobra.NoArgs,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = streams.Out.Write(data)
			return err
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists: %s", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(streams.Out, "Wrote %s\n", path)
			return nil
		},
	})

	return configCmd
}
