package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMaybeAddToGitignore(t *testing.T) {
	root := t.TempDir()
	gitignore := filepath.Join(root, ".gitignore")
	if err := os.WriteFile(gitignore, []byte("*.log\n"), 0o644); err != nil {
		t.Fatalf("failed to write .gitignore: %v", err)
	}
	out := filepath.Join(root, "prompt.txt")

	added, err := maybeAddToGitignore(root, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != "prompt.txt" {
		t.Fatalf("expected prompt.txt to be added, got %q", added)
	}
	data := mustReadFile(t, gitignore)
	if !strings.HasSuffix(string(data), "prompt.txt\n") {
		t.Fatalf("unexpected .gitignore content: %q", data)
	}

	// A second run must not duplicate the entry
	added, err = maybeAddToGitignore(root, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != "" {
		t.Fatalf("expected no second append, got %q", added)
	}
}

func TestMaybeAddToGitignoreAlreadyMatched(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.md\n"), 0o644); err != nil {
		t.Fatalf("failed to write .gitignore: %v", err)
	}

	added, err := maybeAddToGitignore(root, filepath.Join(root, "out.md"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != "" {
		t.Fatalf("expected matched file to be skipped, got %q", added)
	}
}

func TestMaybeAddToGitignoreWithoutGitignore(t *testing.T) {
	root := t.TempDir()

	added, err := maybeAddToGitignore(root, filepath.Join(root, "out.md"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != "" {
		t.Fatalf("expected no append without a .gitignore, got %q", added)
	}
	if _, err := os.Stat(filepath.Join(root, ".gitignore")); !os.IsNotExist(err) {
		t.Fatalf("a .gitignore should not be created")
	}
}

func TestMaybeAddToGitignoreOutsideRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.log\n"), 0o644); err != nil {
		t.Fatalf("failed to write .gitignore: %v", err)
	}

	added, err := maybeAddToGitignore(root, filepath.Join(t.TempDir(), "out.md"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != "" {
		t.Fatalf("files outside the root must not be appended, got %q", added)
	}
}

func TestMaybeAddToGitignoreMissingTrailingNewline(t *testing.T) {
	root := t.TempDir()
	gitignore := filepath.Join(root, ".gitignore")
	if err := os.WriteFile(gitignore, []byte("*.log"), 0o644); err != nil {
		t.Fatalf("failed to write .gitignore: %v", err)
	}

	if _, err := maybeAddToGitignore(root, filepath.Join(root, "out.md")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(mustReadFile(t, gitignore)); got != "*.log\nout.md\n" {
		t.Fatalf("unexpected .gitignore content: %q", got)
	}
}

func TestDeliverWritesFileVerbatim(t *testing.T) {
	root := t.TempDir()
	outPath := filepath.Join(root, "out.md")
	cfg := &Config{
		Root:             root,
		OutputFile:       outPath,
		OutputMode:       outputModeCopy,
		SkipGitignoreAdd: true,
	}
	content := "<documents>\ncontent\x00with bytes, no trailing newline"

	if err := deliver(cfg, content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(mustReadFile(t, outPath)); got != content {
		t.Fatalf("content was not written verbatim: %q", got)
	}
}

func TestDeliverAppendsOutputToGitignore(t *testing.T) {
	root := t.TempDir()
	gitignore := filepath.Join(root, ".gitignore")
	if err := os.WriteFile(gitignore, []byte("*.log\n"), 0o644); err != nil {
		t.Fatalf("failed to write .gitignore: %v", err)
	}
	cfg := &Config{
		Root:       root,
		OutputFile: filepath.Join(root, "prompt.md"),
		OutputMode: outputModeCopy,
	}

	if err := deliver(cfg, "content\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(mustReadFile(t, gitignore)); got != "*.log\nprompt.md\n" {
		t.Fatalf("unexpected .gitignore content: %q", got)
	}
}

// captureStdout swaps stdout for a pipe around fn. Routing inside fn
// therefore never sees an interactive session.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fnErr := fn()
	os.Stdout = orig
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	if fnErr != nil {
		t.Fatalf("unexpected error: %v", fnErr)
	}
	return string(data)
}

func TestDeliverPrintModeWritesStdout(t *testing.T) {
	content := "<documents>\npayload\x00with bytes, no trailing newline"

	got := captureStdout(t, func() error {
		return deliver(&Config{OutputMode: outputModePrint}, content)
	})
	if got != content {
		t.Fatalf("print mode must write the content verbatim, got %q", got)
	}
}

func TestDeliverCopyModeNonInteractive(t *testing.T) {
	content := "alpha\nbeta\n"

	got := captureStdout(t, func() error {
		return deliver(&Config{OutputMode: outputModeCopy}, content)
	})
	if got != content {
		t.Fatalf("copy mode without a terminal must print the content, got %q", got)
	}
}
