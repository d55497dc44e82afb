package frontend

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cyascript/cyascript/internal/ast"
	"github.com/cyascript/cyascript/internal/config"
	"github.com/cyascript/cyascript/internal/lexer"
)

// RenderOptions controls Render.
type RenderOptions struct {
	Format    string
	ShowLines bool
}

// Render writes file to w in the requested format.
func Render(w io.Writer, file *ast.ParsedFile, opts RenderOptions) error {
	switch opts.Format {
	case config.OutputText, "":
		return renderText(w, file, opts.ShowLines)
	case config.OutputJSON:
		tree, err := ast.Encode(file)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case config.OutputYAML:
		tree, err := ast.Encode(file)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", opts.Format)
}

func renderText(w io.Writer, file *ast.ParsedFile, showLines bool) error {
	if showLines {
		_, err := io.WriteString(w, file.Dump())
		return err
	}
	for _, s := range file.Statements {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// WriteTokens lists tokens with their lines, then the end-of-input line.
func WriteTokens(w io.Writer, tokens []lexer.Token, lines []int) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", lineAt(lines, i), tok); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%4d  <eof>\n", lineAt(lines, len(tokens)))
	return err
}

func lineAt(lines []int, i int) int {
	if i < len(lines) {
		return lines[i]
	}
	return 0
}
