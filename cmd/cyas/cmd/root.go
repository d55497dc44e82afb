package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cyascript/cyascript/internal/cli"
	"github.com/cyascript/cyascript/internal/config"
)

type rootOptions struct {
	cfgFile string
	verbose bool
	debug   bool
}

// NewRootCommand builds the cyas command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cyas",
		Short: "cyascript front end",
		Long: `cyas runs the cyascript front end on source files.

Commands:
  parse    - tokenize and parse files, print the syntax tree
  tokens   - print the token stream of a file
  version  - print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "debug output")

	root.AddCommand(
		newParseCommand(opts),
		newTokensCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads the configuration, applies flag overrides through override
// and validates the result.
func (o *rootOptions) setup(cmd *cobra.Command, override func(*config.Config)) (*config.Config, *cli.Logger, error) {
	path := o.cfgFile
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Log.Verbose = o.verbose
	}
	if flags.Changed("debug") {
		cfg.Log.Debug = o.debug
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(cli.Version); err != nil {
		return nil, nil, err
	}

	logger := cli.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log.Verbose, cfg.Log.Debug)
	if cfg.Path() != "" {
		logger.Debug("loaded config %s", cfg.Path())
	}
	return cfg, logger, nil
}
