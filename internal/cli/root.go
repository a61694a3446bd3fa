// Package cli implements the tabprint command.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/tabprint"
	"github.com/bjaus/tabprint/internal/config"
	"github.com/bjaus/tabprint/internal/input"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c string) {
	version = v
	commit = c
}

type options struct {
	input      string
	output     string
	query      string
	configPath string
	style      config.StyleConfig
}

// NewRootCommand returns the tabprint command.
func NewRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "tabprint [file]",
		Short: "Render tabular data as an aligned text table",
		Long: `tabprint reads CSV, TSV, JSON or YAML data from a file or standard input
and renders it as a boxed text table.

The first CSV/TSV record holds the column titles. JSON and YAML input may be
a {"titles": [...], "rows": [[...]]} document, an array of arrays (first one
is the titles) or an array of objects. Use --query to reshape JSON and YAML
input with a jq expression first.

Settings are read from ~/.config/tabprint/config.yaml (or --config, which
may also be a .toml file). Flags take precedence.`,
		Example: `  tabprint people.csv
  kubectl get pods -o json | tabprint -i json -q '[.items[] | {name: .metadata.name, phase: .status.phase}]'
  tabprint --column '│' --rule '─' --cross '┼' --measure cells data.tsv
  tabprint -o markdown people.csv`,
		Args:          cobra.MaximumNArgs(1),
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return run(cmd, opts, source)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "input format: csv, tsv, json, yaml (default: from file extension, else csv)")
	f.StringVarP(&opts.output, "output", "o", "", "output format: "+formatList()+", go-template=<tmpl> (default boxed)")
	f.StringVarP(&opts.query, "query", "q", "", "jq expression applied to json/yaml input")
	f.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/tabprint/config.yaml)")
	f.StringVar(&opts.style.Column, "column", "", "column separator character (default |)")
	f.StringVar(&opts.style.Rule, "rule", "", "rule line character (default -)")
	f.StringVar(&opts.style.Cross, "cross", "", "character where rules meet columns (default +)")
	f.StringVar(&opts.style.Newline, "newline", "", "line terminator: lf, crlf, native (default lf)")
	f.StringVar(&opts.style.Measure, "measure", "", "column width metric: bytes, runes, cells (default bytes)")
	return cmd
}

// Execute runs the root command, reporting any error on stderr.
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "tabprint: %v\n", err)
		return err
	}
	return nil
}

func run(cmd *cobra.Command, opts options, source string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	inFmt, err := resolveInput(opts.input, cfg.Input, source)
	if err != nil {
		return err
	}
	outFmt, err := resolveOutput(opts.output, cfg.Output)
	if err != nil {
		return err
	}

	r, closeFn, err := openSource(source, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closeFn()

	tab, err := input.Decode(r, inFmt, opts.query)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	style, err := cfg.Style.Merge(opts.style).Apply(tabprint.DefaultStyle())
	if err != nil {
		return err
	}
	tab.SetStyle(style)

	return tabprint.Write(cmd.OutOrStdout(), outFmt, tab)
}

// loadConfig reads the config at path, or the default config when path is
// empty. Only the default config may be absent.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		def, err := config.DefaultPath()
		if err != nil {
			return &config.Config{}, nil
		}
		return config.Load(def)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return config.Load(path)
}

// resolveInput picks the input format: flag, then a recognised file
// extension, then config, then csv.
func resolveInput(flag, configured, source string) (input.Format, error) {
	if flag != "" {
		return input.ParseFormat(flag)
	}
	if source != "-" {
		if f, ok := input.Detect(source); ok {
			return f, nil
		}
	}
	if configured != "" {
		return input.ParseFormat(configured)
	}
	return input.CSV, nil
}

func resolveOutput(flag, configured string) (tabprint.Format, error) {
	switch {
	case flag != "":
		return tabprint.ParseFormat(flag)
	case configured != "":
		return tabprint.ParseFormat(configured)
	default:
		return tabprint.Boxed, nil
	}
}

// openSource opens a file path, or stdin when source is "-". It refuses an
// interactive terminal so the command never waits on keyboard input.
func openSource(source string, stdin io.Reader) (io.Reader, func(), error) {
	if source != "-" {
		file, err := os.Open(source)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", source, err)
		}
		return file, func() { _ = file.Close() }, nil
	}
	if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return nil, nil, fmt.Errorf("no input: pass a file or pipe data to standard input")
	}
	return stdin, func() {}, nil
}

func formatList() string {
	names := make([]string, 0, len(tabprint.Formats()))
	for _, f := range tabprint.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
