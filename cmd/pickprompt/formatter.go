package main

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// errEmptySelection marks a confirmed but empty selection. It is
// reported as a warning, with a failure exit since there is nothing to
// deliver.
var errEmptySelection = errors.New("no files selected")

// formatterArgs builds the files-to-prompt argument vector. Selected
// paths travel as individual vector elements, so filenames with spaces
// or shell metacharacters need no escaping.
func formatterArgs(format string, lineNumbers bool, selection []string) []string {
	var args []string
	switch format {
	case formatCXML:
		args = append(args, "--cxml")
	case formatMarkdown:
		args = append(args, "--markdown")
	case formatPlain:
	default:
		warnMsg(fmt.Sprintf("unknown format %q, using plain", format))
	}
	if lineNumbers {
		args = append(args, "--line-numbers")
	}
	return append(args, selection...)
}

// formatSelection runs files-to-prompt over the selection and captures
// the formatted document from its stdout. The formatter is never
// invoked for an empty selection.
func formatSelection(formatterPath string, cfg *Config, selection []string) (string, error) {
	if len(selection) == 0 {
		return "", errEmptySelection
	}

	cmd := exec.Command(formatterPath, formatterArgs(cfg.Format, cfg.LineNumbers, selection)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := runWithSpinner("Formatting selection...", cmd.Run); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("files-to-prompt failed: %s", msg)
		}
		return "", fmt.Errorf("files-to-prompt failed: %w", err)
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		infoMsg(msg)
	}
	return stdout.String(), nil
}
