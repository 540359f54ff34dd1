package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleFileName is used both for the per-project rule file inside the
// search root and for the defaults file in the user's home directory.
const ruleFileName = ".pickprompt"

type ruleProfile struct {
	Extensions []string `yaml:"extensions"`
	Ignore     []string `yaml:"ignore"`
}

type ruleFile struct {
	Extensions []string               `yaml:"extensions"`
	Ignore     []string               `yaml:"ignore"`
	Profiles   map[string]ruleProfile `yaml:"profiles"`
}

type ruleSet struct {
	extensions []string
	ignore     []string
}

// readRuleFile loads the rule file and merges the selected profile on
// top of the base lists. An unknown profile falls back to the profile
// named "default" when one exists.
func readRuleFile(path string, profile string) (*ruleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg ruleFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rule file: %w", err)
	}

	extensions := append([]string{}, cfg.Extensions...)
	ignore := append([]string{}, cfg.Ignore...)

	if len(cfg.Profiles) > 0 {
		if prof, ok := cfg.Profiles[profile]; ok {
			extensions = append(extensions, prof.Extensions...)
			ignore = append(ignore, prof.Ignore...)
		} else if prof, ok := cfg.Profiles["default"]; ok {
			extensions = append(extensions, prof.Extensions...)
			ignore = append(ignore, prof.Ignore...)
		}
	}

	return &ruleSet{
		extensions: extensions,
		ignore:     ignore,
	}, nil
}
