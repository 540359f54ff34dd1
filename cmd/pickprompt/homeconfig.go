package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	outputModePrint   = "print"
	outputModeCopy    = "copy"
	outputModeSSHCopy = "ssh-copy"
)

func normalizeOutputMode(mode string) (string, bool) {
	m := strings.TrimSpace(strings.ToLower(mode))
	switch m {
	case outputModePrint:
		return outputModePrint, true
	case outputModeCopy:
		return outputModeCopy, true
	case outputModeSSHCopy, "sshcopy", "ssh", "osc52":
		return outputModeSSHCopy, true
	default:
		return "", false
	}
}

// resolveOutputMode maps the routing flags onto a single output mode.
// The default mode applies only when neither flag is set; an empty
// default means copy.
func resolveOutputMode(defaultMode string, noCopyFlag, sshCopyFlag bool) (string, error) {
	if noCopyFlag && sshCopyFlag {
		return "", fmt.Errorf("only one of --no-copy or --ssh-copy may be set")
	}
	if noCopyFlag {
		return outputModePrint, nil
	}
	if sshCopyFlag {
		return outputModeSSHCopy, nil
	}
	if defaultMode == "" {
		return outputModeCopy, nil
	}
	return defaultMode, nil
}

// homeDefaults holds the defaults read from the optional ~/.pickprompt
// file. The format value is returned raw; the caller applies the enum
// fallback so the warning lands in one place.
type homeDefaults struct {
	format string
	output string
}

func readHomeDefaultsFromFile(path string) (homeDefaults, error) {
	var defaults homeDefaults
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return defaults, nil
	}
	var cfg map[string]any
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaults, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if raw, ok := cfg["format"]; ok {
		formatStr, ok := raw.(string)
		if !ok {
			return defaults, fmt.Errorf("invalid format value in %s: expected string", path)
		}
		defaults.format = formatStr
	}
	if raw, ok := cfg["output"]; ok {
		outputStr, ok := raw.(string)
		if !ok {
			return defaults, fmt.Errorf("invalid output value in %s: expected string", path)
		}
		normalized, ok := normalizeOutputMode(outputStr)
		if !ok {
			return defaults, fmt.Errorf("invalid output mode %q in %s (expected print, copy, or ssh-copy)", outputStr, path)
		}
		defaults.output = normalized
	}
	return defaults, nil
}

func homeConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ruleFileName), nil
}

func readHomeDefaults() (homeDefaults, error) {
	path, err := homeConfigPath()
	if err != nil {
		return homeDefaults{}, err
	}
	return readHomeDefaultsFromFile(path)
}

func writeDefaultOutputModeToFile(path string, mode string) error {
	normalized, ok := normalizeOutputMode(mode)
	if !ok {
		return fmt.Errorf("invalid output mode %q (expected print, copy, or ssh-copy)", mode)
	}
	var cfg map[string]any
	data, err := os.ReadFile(path)
	if err == nil {
		if len(strings.TrimSpace(string(data))) > 0 {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	} else if !os.IsNotExist(err) {
		return err
	}
	if cfg == nil {
		cfg = make(map[string]any)
	}
	cfg["output"] = normalized
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, out, perm)
}

func writeHomeDefaultOutputMode(mode string) error {
	path, err := homeConfigPath()
	if err != nil {
		return err
	}
	return writeDefaultOutputModeToFile(path, mode)
}
