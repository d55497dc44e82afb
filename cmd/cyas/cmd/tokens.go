package cmd

import (
	"github.com/spf13/cobra"

	cyaserrors "github.com/cyascript/cyascript/internal/errors"
	"github.com/cyascript/cyascript/internal/frontend"
	"github.com/cyascript/cyascript/internal/lexer"
)

func newTokensCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := root.setup(cmd, nil)
			if err != nil {
				return err
			}

			path, src, err := frontend.LoadSource(args[0])
			if err != nil {
				return err
			}
			tokens, lines, err := lexer.Tokenize(src)
			if err != nil {
				return cyaserrors.LexFailed(path, err)
			}
			logger.Info("%s: %d tokens", path, len(tokens))
			return frontend.WriteTokens(cmd.OutOrStdout(), tokens, lines)
		},
	}
}
