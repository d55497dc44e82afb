package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestStandardError(t *testing.T) {
	err := NewStandardError(CategoryUsage, "BAD_FLAG", "unknown output", map[string]interface{}{"flag": "output"})

	if err.Error() != "unknown output" {
		t.Errorf("unexpected message %q", err.Error())
	}
	detail := err.Detail()
	if !strings.HasPrefix(detail, "[USAGE:BAD_FLAG] unknown output (caller: ") {
		t.Errorf("unexpected detail %q", detail)
	}
	if !strings.Contains(err.Caller, "TestStandardError") {
		t.Errorf("Expected caller to name the test, got %q", err.Caller)
	}
}

func TestConstructors(t *testing.T) {
	cause := stderrors.New("permission denied")

	tests := []struct {
		name     string
		err      *StandardError
		category ErrorCategory
		message  string
	}{
		{"not found", FileNotFound("main.cyas"), CategoryIO, `File "main.cyas" does not exist.`},
		{"read failed", ReadFailed("main.cyas", cause), CategoryIO, `Read file "main.cyas" failed.`},
		{"config", InvalidConfig("output", "xml", "unknown format"), CategoryConfig, "Invalid value xml for output: unknown format"},
		{"lex", LexFailed("a.cyas", cause), CategoryLexical, "permission denied"},
		{"parse", ParseFailed("a.cyas", cause), CategorySyntax, "permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Category != tt.category {
				t.Errorf("Expected category %s, got %s", tt.category, tt.err.Category)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Expected %q, got %q", tt.message, tt.err.Error())
			}
			if !strings.Contains(tt.err.Caller, "TestConstructors") {
				t.Errorf("Expected caller to name the test, got %q", tt.err.Caller)
			}
		})
	}
}

func TestWrapAndCategoryOf(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, CategoryIO, "WRITE_FAILED", "write output failed")

	if !stderrors.Is(err, cause) {
		t.Errorf("Expected wrapped error to match its cause")
	}

	var wrapped error = err
	category, ok := CategoryOf(wrapped)
	if !ok || category != CategoryIO {
		t.Errorf("Expected IO category, got %q (%v)", category, ok)
	}
	if _, ok := CategoryOf(cause); ok {
		t.Errorf("plain errors have no category")
	}
}
