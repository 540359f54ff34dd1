package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// errPickCancelled marks the user backing out of the picker. Callers
// treat it as a clean abort, not a failure.
var errPickCancelled = errors.New("selection cancelled")

const pickerHeader = "tab: mark  ctrl-a: all  ctrl-d: none  ctrl-p: preview  ctrl-r: reload"

// previewCommand builds the preview pane command. bat is preferred for
// highlighting, with a plain head fallback when it is missing or fails
// on the hovered file.
func previewCommand(batPath string) string {
	if batPath == "" {
		return "head -50 {}"
	}
	return fmt.Sprintf("%s --style=numbers --color=always --line-range :50 {} 2>/dev/null || head -50 {}", shellQuote(batPath))
}

// pickerArgs builds the fzf argument vector. The reload binding re-runs
// the discovery command so the listing can be refreshed in place.
func pickerArgs(cfg *Config, reloadCmd, previewCmd string) []string {
	args := []string{
		"--multi",
		"--height", "80%",
		"--layout", "reverse",
		"--border",
		"--info", "inline",
		"--prompt", "pickprompt> ",
		"--header", pickerHeader,
		"--bind", "ctrl-a:select-all",
		"--bind", "ctrl-d:deselect-all",
		"--bind", "ctrl-p:toggle-preview",
		"--bind", fmt.Sprintf("ctrl-r:reload(%s)", reloadCmd),
	}
	if cfg.Preview {
		args = append(args, "--preview", previewCmd)
	}
	return args
}

// pickFiles pipes the discovery listing into the picker and returns the
// confirmed selection, one path per line, in picker order.
func pickFiles(tools *toolset, cfg *Config, findArgs []string) ([]string, error) {
	reloadCmd := discoveryCommandString(tools.find, findArgs)
	previewCmd := previewCommand(tools.preview)

	discovery := exec.Command(tools.find, findArgs...)
	var findErrs bytes.Buffer
	discovery.Stderr = &findErrs

	pipe, err := discovery.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to connect discovery output: %w", err)
	}

	picker := exec.Command(tools.picker, pickerArgs(cfg, reloadCmd, previewCmd)...)
	picker.Stdin = pipe
	picker.Stderr = os.Stderr
	var selected bytes.Buffer
	picker.Stdout = &selected

	if err := discovery.Start(); err != nil {
		return nil, fmt.Errorf("failed to start fd: %w", err)
	}
	pickErr := picker.Run()
	// Drop the read end so fd cannot block on a full pipe when the
	// user confirmed before the listing finished.
	pipe.Close()
	findErr := discovery.Wait()

	selection := splitLines(selected.String())

	if pickErr != nil {
		var exitErr *exec.ExitError
		if errors.As(pickErr, &exitErr) && exitErr.ExitCode() != 2 && len(selection) == 0 {
			// Escape, ctrl-c, or enter on an empty listing
			return nil, errPickCancelled
		}
		return nil, fmt.Errorf("fzf failed: %w", pickErr)
	}
	if findErr != nil && len(selection) == 0 && !killedByPipeClose(findErr) {
		msg := strings.TrimSpace(findErrs.String())
		if msg != "" {
			return nil, fmt.Errorf("fd failed: %s", msg)
		}
		return nil, fmt.Errorf("fd failed: %w", findErr)
	}

	return selection, nil
}

// killedByPipeClose reports whether a process died from a signal rather
// than exiting on its own. Closing the listing pipe kills fd with
// SIGPIPE when the picker quit without draining it; that is teardown,
// not a discovery failure, and an empty confirmed selection must be
// reported as such.
func killedByPipeClose(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == -1
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
