package main

import (
	"fmt"
	"os"
	"strings"
)

func printContent(content string) error {
	if _, err := fmt.Print(content); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

// deliver routes the content blob by priority: output file first, then
// OSC 52, then stdout when copying is off or the session is not
// interactive, then the system clipboard. A missing clipboard utility
// degrades to stdout; a failing one is an error.
func deliver(cfg *Config, content string) error {
	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", cfg.OutputFile, err)
		}
		successMsg(fmt.Sprintf("wrote %s to %s", formatBytes(len(content)), cfg.OutputFile))
		if !cfg.SkipGitignoreAdd {
			added, err := maybeAddToGitignore(cfg.Root, cfg.OutputFile)
			if err != nil {
				warnMsg(fmt.Sprintf("could not update .gitignore: %v", err))
			} else if added != "" {
				infoMsg(fmt.Sprintf("added %s to .gitignore", added))
			}
		}
		return nil
	}

	switch cfg.OutputMode {
	case outputModeSSHCopy:
		if err := copyToOSC52(content); err != nil {
			return err
		}
		successMsg(fmt.Sprintf("copied %s via OSC 52", formatBytes(len(content))))
		return nil
	case outputModePrint:
		return printContent(content)
	}

	if !interactiveSession() {
		return printContent(content)
	}

	tool, tried := findClipboardTool()
	if tool == nil {
		warnMsg(fmt.Sprintf("no clipboard utility found (tried %s), printing instead", strings.Join(tried, ", ")))
		return printContent(content)
	}
	if err := runClipboardCommand(tool, content); err != nil {
		return err
	}
	successMsg(fmt.Sprintf("copied %s to clipboard via %s", formatBytes(len(content)), tool.name))
	return nil
}
