package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cyascript/cyascript/internal/ast"
	"github.com/cyascript/cyascript/internal/cli"
	"github.com/cyascript/cyascript/internal/config"
	"github.com/cyascript/cyascript/internal/frontend"
	"github.com/cyascript/cyascript/internal/watch"
)

type parseOptions struct {
	output string
	lines  bool
	watch  bool
}

func newParseCommand(root *rootOptions) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse source files and print the syntax tree",
		Long: `Parse tokenizes and parses each file and prints the result.

A path without an extension gets ".cyas" appended. With --watch the file is
parsed again every time it changes; errors are reported and watching goes on.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", config.OutputText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.lines, "lines", true, "prefix statements with their line (text output)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "parse again when the file changes")
	return cmd
}

func runParse(cmd *cobra.Command, root *rootOptions, opts *parseOptions, args []string) error {
	cfg, logger, err := root.setup(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("output") {
			cfg.Output = opts.output
		}
		if cmd.Flags().Changed("lines") {
			cfg.ShowLines = opts.lines
		}
	})
	if err != nil {
		return err
	}

	render := frontend.RenderOptions{Format: cfg.Output, ShowLines: cfg.ShowLines}
	out := cmd.OutOrStdout()

	if !opts.watch {
		return parseFiles(out, logger, args, render)
	}
	if len(args) != 1 {
		return fmt.Errorf("--watch takes exactly one file, got %d", len(args))
	}

	debounce, err := cfg.DebounceDuration()
	if err != nil {
		return err
	}
	if err := parseFiles(out, logger, args, render); err != nil {
		logger.Error("%v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	path := frontend.ResolvePath(args[0])
	logger.Info("watching %s (debounce %s)", path, debounce)
	return watch.Run(ctx, path, debounce, func(ev watch.Event) {
		logger.Debug("change detected: %s", ev.Path)
		if err := parseFiles(out, logger, args, render); err != nil {
			logger.Error("%v", err)
		}
	})
}

func parseFiles(w io.Writer, logger *cli.Logger, paths []string, opts frontend.RenderOptions) error {
	results, err := frontend.CompileFiles(paths)
	if err != nil {
		return err
	}

	for _, res := range results {
		logger.Info("parsed %s: %d tokens, %d statements", res.Path, len(res.Tokens), len(res.File.Statements))
		logger.Debug("%s: %d nodes", res.Path, ast.CountNodes(res.File))

		if len(results) > 1 && (opts.Format == config.OutputText || opts.Format == "") {
			fmt.Fprintf(w, "# %s\n", res.Path)
		}
		if err := frontend.Render(w, res.File, opts); err != nil {
			return fmt.Errorf("%s: %w", res.Path, err)
		}
	}
	return nil
}
