package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): %v", path, err)
	}
	return path
}

func TestLintFileAcceptsValidStylesheet(t *testing.T) {
	path := writeTemp(t, "ok.scss", "a { color: red; }\n")
	if err := lintFile(path, "text"); err != nil {
		t.Errorf("lintFile() = %v, want nil", err)
	}
}

func TestLintFileReportsSyntaxError(t *testing.T) {
	path := writeTemp(t, "bad.scss", "a { color: red;\n")
	if err := lintFile(path, "text"); err == nil {
		t.Error("lintFile() = nil, want a syntax error")
	}
}

func TestLintFileMissingFile(t *testing.T) {
	if err := lintFile(filepath.Join(t.TempDir(), "missing.scss"), "text"); err == nil {
		t.Error("lintFile() = nil, want a read error")
	}
}

func TestReportJSONEncodesLineAndMessage(t *testing.T) {
	path := writeTemp(t, "bad.scss", "a { color: red;\n")

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe(): %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	lintErr := lintFile(path, "json")
	w.Close()
	os.Stdout = orig

	if lintErr == nil {
		t.Fatal("lintFile() = nil, want a syntax error")
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	var got jsonError
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal(%q): %v", buf.String(), err)
	}
	if got.File != path {
		t.Errorf("File = %q, want %q", got.File, path)
	}
	if got.Line == 0 {
		t.Errorf("Line = 0, want a positive line number")
	}
	if got.Message == "" {
		t.Error("Message is empty")
	}
}
