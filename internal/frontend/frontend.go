// Package frontend drives the cyascript front end: it loads source files,
// runs the tokenizer and the parser, and renders the result.
package frontend

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cyascript/cyascript/internal/ast"
	cyaserrors "github.com/cyascript/cyascript/internal/errors"
	"github.com/cyascript/cyascript/internal/lexer"
	"github.com/cyascript/cyascript/internal/parser"
)

// Extension is appended to source paths given without one.
const Extension = ".cyas"

// Result is the outcome of compiling one source file.
type Result struct {
	Path   string
	Tokens []lexer.Token
	Lines  []int
	File   *ast.ParsedFile
}

// ResolvePath appends Extension when path has no extension.
func ResolvePath(path string) string {
	if filepath.Ext(path) == "" {
		return path + Extension
	}
	return path
}

// LoadSource resolves path and reads it. It returns the resolved path.
func LoadSource(path string) (string, []byte, error) {
	resolved := ResolvePath(path)
	if _, err := os.Stat(resolved); err != nil {
		if os.IsNotExist(err) {
			return resolved, nil, cyaserrors.FileNotFound(resolved)
		}
		return resolved, nil, cyaserrors.ReadFailed(resolved, err)
	}
	src, err := os.ReadFile(resolved)
	if err != nil {
		return resolved, nil, cyaserrors.ReadFailed(resolved, err)
	}
	return resolved, src, nil
}

// Compile tokenizes and parses src. path only labels errors.
func Compile(path string, src []byte) (*Result, error) {
	tokens, lines, err := lexer.Tokenize(src)
	if err != nil {
		return nil, cyaserrors.LexFailed(path, err)
	}

	// the parser does not modify its input, so the result can share it
	file, err := parser.Parse(tokens, lines)
	if err != nil {
		return nil, cyaserrors.ParseFailed(path, err)
	}

	return &Result{Path: path, Tokens: tokens, Lines: lines, File: file}, nil
}

// CompileFile loads and compiles one file.
func CompileFile(path string) (*Result, error) {
	resolved, src, err := LoadSource(path)
	if err != nil {
		return nil, err
	}
	return Compile(resolved, src)
}

// CompileFiles compiles each path in order and numbers the parsed files by
// position. It stops at the first failure.
func CompileFiles(paths []string) ([]*Result, error) {
	results := make([]*Result, 0, len(paths))
	for i, path := range paths {
		res, err := CompileFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ResolvePath(path), err)
		}
		res.File.Index = i
		results = append(results, res)
	}
	return results, nil
}
