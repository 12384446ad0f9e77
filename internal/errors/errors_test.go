package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew_Registered(t *testing.T) {
	err := New("R001")

	if err.Code != "R001" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Category != CategoryConfig {
		t.Errorf("Category = %q", err.Category)
	}
	if err.Message != "Invalid configuration" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Suggestion == "" {
		t.Error("expected template suggestion")
	}
}

func TestNew_Unknown(t *testing.T) {
	err := New("R999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "R001") != nil {
		t.Error("FromError(nil) should be nil")
	}

	base := fmt.Errorf("bad sort")
	err := FromError(base, "R001")
	if !stderrors.Is(err, base) {
		t.Error("wrapped error not reachable with errors.Is")
	}
	if got := err.Error(); got != "R001: Invalid configuration: bad sort" {
		t.Errorf("Error() = %q", got)
	}

	// Already coded errors keep their code.
	again := FromError(fmt.Errorf("load: %w", err), "R002")
	if again != err {
		t.Errorf("FromError rewrapped a coded error: %v", again)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("R020").Wrap(fmt.Errorf("server: flush limit exceeded")).Format()

	for _, want := range []string{
		"ERROR R020: Flush did not settle",
		"Cause: server: flush limit exceeded",
		"Hint: Break the cycle",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() contains ANSI codes with colors disabled")
	}
}

func TestPrint_PlainError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Print(&buf, fmt.Errorf("boom"))
	if !strings.Contains(buf.String(), "ERROR: boom") {
		t.Errorf("Print() = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText(strings.Repeat("word ", 30), 20)
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line too long (%d): %q", len(l), l)
		}
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}

func TestRegistry_CodesAreCategorized(t *testing.T) {
	for code, tmpl := range registry {
		if tmpl.Category == "" || tmpl.Message == "" {
			t.Errorf("%s: incomplete template %+v", code, tmpl)
		}
		if _, ok := Lookup(code); !ok {
			t.Errorf("Lookup(%q) failed", code)
		}
	}
}
