package frontend

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	cyaserrors "github.com/cyascript/cyascript/internal/errors"
	"github.com/cyascript/cyascript/internal/lexer"
	"github.com/cyascript/cyascript/internal/parser"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}
	return path
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"main", "main.cyas"},
		{"main.cyas", "main.cyas"},
		{"notes.txt", "notes.txt"},
		{filepath.Join("dir.v2", "main"), filepath.Join("dir.v2", "main.cyas")},
	}
	for _, tt := range tests {
		if got := ResolvePath(tt.in); got != tt.expected {
			t.Errorf("ResolvePath(%q): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(dir, "nope")
		_, _, err := LoadSource(missing)
		var se *cyaserrors.StandardError
		if !errors.As(err, &se) || se.Code != "FILE_NOT_FOUND" {
			t.Fatalf("Expected FILE_NOT_FOUND, got %v", err)
		}
		want := `File "` + missing + `.cyas" does not exist.`
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("unreadable", func(t *testing.T) {
		if err := os.Mkdir(filepath.Join(dir, "pkg.cyas"), 0755); err != nil {
			t.Fatal(err)
		}
		_, _, err := LoadSource(filepath.Join(dir, "pkg"))
		var se *cyaserrors.StandardError
		if !errors.As(err, &se) || se.Code != "READ_FAILED" {
			t.Fatalf("Expected READ_FAILED, got %v", err)
		}
		if !strings.HasSuffix(err.Error(), `pkg.cyas" failed.`) {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("extension appended", func(t *testing.T) {
		path := writeSource(t, dir, "main.cyas", "let a = 1\n")
		resolved, src, err := LoadSource(strings.TrimSuffix(path, Extension))
		if err != nil {
			t.Fatalf("LoadSource failed: %v", err)
		}
		if resolved != path {
			t.Errorf("Expected %s, got %s", path, resolved)
		}
		if string(src) != "let a = 1\n" {
			t.Errorf("unexpected source %q", src)
		}
	})
}

func TestCompile(t *testing.T) {
	res, err := Compile("t.cyas", []byte("let x Int = \"hi\"\nx;\n"))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(res.File.Statements) != 2 {
		t.Errorf("Expected 2 statements, got %d", len(res.File.Statements))
	}
	if len(res.Lines) != len(res.Tokens)+1 {
		t.Errorf("line table has %d entries for %d tokens", len(res.Lines), len(res.Tokens))
	}

	_, err = Compile("t.cyas", []byte("let s = \"open"))
	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected *lexer.LexError, got %v", err)
	}
	if category, _ := cyaserrors.CategoryOf(err); category != cyaserrors.CategoryLexical {
		t.Errorf("Expected LEXICAL category, got %q", category)
	}

	_, err = Compile("t.cyas", []byte("let x Int \"hi\""))
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *parser.ParseError, got %v", err)
	}
	if category, _ := cyaserrors.CategoryOf(err); category != cyaserrors.CategorySyntax {
		t.Errorf("Expected SYNTAX category, got %q", category)
	}
	if !strings.HasPrefix(err.Error(), "Parse error line 1 : ") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestCompileFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.cyas", "let a = 1")
	b := writeSource(t, dir, "b.cyas", "let b = 2")

	results, err := CompileFiles([]string{a, strings.TrimSuffix(b, Extension)})
	if err != nil {
		t.Fatalf("CompileFiles failed: %v", err)
	}
	for i, res := range results {
		if res.File.Index != i {
			t.Errorf("file %d: expected index %d, got %d", i, i, res.File.Index)
		}
	}
	if results[1].Path != b {
		t.Errorf("Expected path %s, got %s", b, results[1].Path)
	}

	bad := writeSource(t, dir, "bad.cyas", "let = 1")
	_, err = CompileFiles([]string{a, bad})
	if err == nil || !strings.HasPrefix(err.Error(), bad+": ") {
		t.Errorf("Expected error prefixed with %s, got %v", bad, err)
	}
}

func TestRender(t *testing.T) {
	res, err := Compile("t.cyas", []byte("let x Int = \"hi\"\n\n(1, y);"))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	tests := []struct {
		name     string
		opts     RenderOptions
		expected string
	}{
		{"text with lines", RenderOptions{Format: "text", ShowLines: true}, "   1  let x: Int = \"hi\"\n   3  (1, y);\n"},
		{"text", RenderOptions{Format: "text"}, "let x: Int = \"hi\"\n(1, y);\n"},
		{"default format", RenderOptions{ShowLines: true}, "   1  let x: Int = \"hi\"\n   3  (1, y);\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, res.File, tt.opts); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, buf.String())
			}
		})
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, res.File, RenderOptions{Format: "json"}); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		var out struct {
			Index      int              `json:"index"`
			Statements []map[string]any `json:"statements"`
		}
		if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(out.Statements) != 2 || out.Statements[0]["kind"] != "let" || out.Statements[1]["kind"] != "discard" {
			t.Errorf("unexpected statements %v", out.Statements)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, res.File, RenderOptions{Format: "yaml"}); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		var out map[string]any
		if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
			t.Fatalf("invalid YAML: %v", err)
		}
		stmts, ok := out["statements"].([]any)
		if !ok || len(stmts) != 2 {
			t.Fatalf("unexpected statements %v", out["statements"])
		}
		init := stmts[0].(map[string]any)["init"].(map[string]any)
		if init["value"] != "hi" {
			t.Errorf("unexpected initializer %v", init)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := Render(&bytes.Buffer{}, res.File, RenderOptions{Format: "xml"}); err == nil {
			t.Errorf("Expected error for unknown format")
		}
	})
}

func TestWriteTokens(t *testing.T) {
	res, err := Compile("t.cyas", []byte("let a = 1\n"))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteTokens(&buf, res.Tokens, res.Lines); err != nil {
		t.Fatalf("WriteTokens failed: %v", err)
	}
	want := "   1  'let'\n   1  Id(a)\n   1  '='\n   1  Int(1)\n   3  <eof>\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}
