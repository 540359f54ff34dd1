package main

import (
	"fmt"
	"os/exec"
	"strings"
)

// externalTool describes one external collaborator. Candidates are
// probed in order and the first one found on PATH wins.
type externalTool struct {
	label      string
	candidates []string
	hint       string
}

var requiredTools = []externalTool{
	{
		label:      "fd",
		candidates: []string{"fd", "fdfind"},
		hint:       "install fd from https://github.com/sharkdp/fd (packaged as fdfind on Debian/Ubuntu)",
	},
	{
		label:      "fzf",
		candidates: []string{"fzf"},
		hint:       "install fzf from https://github.com/junegunn/fzf",
	},
	{
		label:      "files-to-prompt",
		candidates: []string{"files-to-prompt"},
		hint:       "pipx install files-to-prompt",
	},
}

// toolset holds the resolved paths of the external collaborators.
type toolset struct {
	find      string
	picker    string
	formatter string
	preview   string // bat or batcat, empty when neither is installed
}

// depError aggregates every missing required tool so a single run
// reports the complete list.
type depError struct {
	missing []externalTool
}

func (e *depError) Error() string {
	names := make([]string, len(e.missing))
	for i, tool := range e.missing {
		names[i] = tool.label
	}
	return fmt.Sprintf("missing required command(s): %s", strings.Join(names, ", "))
}

func (e *depError) hints() []string {
	hints := make([]string, len(e.missing))
	for i, tool := range e.missing {
		hints[i] = tool.hint
	}
	return hints
}

func lookupFirst(candidates ...string) string {
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

func resolveTools() (*toolset, error) {
	found := make(map[string]string, len(requiredTools))
	var missing []externalTool
	for _, tool := range requiredTools {
		path := lookupFirst(tool.candidates...)
		if path == "" {
			missing = append(missing, tool)
			continue
		}
		found[tool.label] = path
	}
	if len(missing) > 0 {
		return nil, &depError{missing: missing}
	}
	return &toolset{
		find:      found["fd"],
		picker:    found["fzf"],
		formatter: found["files-to-prompt"],
		preview:   lookupFirst("bat", "batcat"),
	}, nil
}
