package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sqwxl/jx/cli"
	"github.com/sqwxl/jx/config"
	"github.com/sqwxl/jx/document"
	"github.com/sqwxl/jx/explorer"
	"github.com/sqwxl/jx/extract"
	"github.com/sqwxl/jx/tui"
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jx:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"jx [file]",
		"Interactive terminal explorer for JSON documents",
	)
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.Flags().StringP("query", "q", "", "JMESPath expression applied before viewing")
	cmd.Flags().String("theme", "", "Color theme (kanagawa, terminal)")
	cmd.RunE = run

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	log := cli.GetLogger(cmd)

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		cfg.Theme = theme
	}

	data, source, err := readInput(args)
	if err != nil {
		return err
	}

	if query, _ := cmd.Flags().GetString("query"); query != "" {
		data, err = extract.ApplyQuery(data, query)
		if err != nil {
			return err
		}
	}

	value, err := document.ParseBytes(data)
	if err != nil {
		return err
	}

	state := explorer.New(value)
	state.Wrap = cfg.Wrap
	state.Numbers = cfg.Numbers
	state.Indent = cfg.Indent

	log.WithField("source", source).Debug("starting explorer")

	output, err := tui.Run(state, source, cfg.Theme, cfg.Keys)
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Println(output)
	}
	return nil
}

// readInput loads the document from the file argument, or from stdin when
// the input is piped.
func readInput(args []string) ([]byte, string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(args[0]), nil
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		return nil, "", fmt.Errorf("no input: pass a file argument or pipe JSON to stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", err
	}
	return data, "stdin", nil
}
