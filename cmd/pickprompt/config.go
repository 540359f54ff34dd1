package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	formatCXML     = "cxml"
	formatMarkdown = "markdown"
	formatPlain    = "plain"
)

// Config is assembled once from flags and config files and handed
// read-only to every downstream stage.
type Config struct {
	Root             string
	Format           string
	Extensions       []string
	IgnorePatterns   []string
	RespectGitignore bool
	IncludeHidden    bool
	LineNumbers      bool
	Preview          bool
	OutputFile       string
	OutputMode       string
	Tokens           bool
	Model            string
	SkipGitignoreAdd bool
}

// options mirrors the command-line flags verbatim, before config files
// and defaults are folded in.
type options struct {
	format          string
	extensions      []string
	ignorePatterns  []string
	ignoreGitignore bool
	includeHidden   bool
	lineNumbers     bool
	noPreview       bool
	outputFile      string
	noCopy          bool
	sshCopy         bool
	profile         string
	tokens          bool
	model           string
	skipGitignore   bool
}

// usageError marks malformed invocations so main can append the usage
// text, which plain runtime errors do not get.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, a ...any) error {
	return &usageError{err: fmt.Errorf(format, a...)}
}

func normalizeFormat(format string) (string, bool) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case formatCXML, "xml":
		return formatCXML, true
	case formatMarkdown, "md":
		return formatMarkdown, true
	case formatPlain, "text":
		return formatPlain, true
	default:
		return "", false
	}
}

// buildConfig folds flags, the rule file in the search root, and the
// home defaults into one Config. The first positional argument is the
// search root; additional positionals are deliberately ignored.
func buildConfig(args []string, opts options) (*Config, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	rules := &ruleSet{}
	rulePath := filepath.Join(root, ruleFileName)
	if _, err := os.Stat(rulePath); err == nil {
		rules, err = readRuleFile(rulePath, opts.profile)
		if err != nil {
			return nil, err
		}
	}

	defaults, err := readHomeDefaults()
	if err != nil {
		return nil, err
	}

	format := opts.format
	if format == "" {
		format = defaults.format
	}
	if format == "" {
		format = formatCXML
	}
	normalized, ok := normalizeFormat(format)
	if !ok {
		warnMsg(fmt.Sprintf("unknown format %q, using plain", format))
		normalized = formatPlain
	}

	if opts.outputFile != "" && opts.sshCopy {
		return nil, usageErrorf("only one of --output or --ssh-copy may be set")
	}
	mode, err := resolveOutputMode(defaults.output, opts.noCopy, opts.sshCopy)
	if err != nil {
		return nil, &usageError{err: err}
	}

	ruleExts, err := normalizeExtensions(rules.extensions)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", err, rulePath)
	}
	flagExts, err := normalizeExtensions(opts.extensions)
	if err != nil {
		return nil, &usageError{err: err}
	}

	for _, pat := range rules.ignore {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid ignore pattern %q in %s", pat, rulePath)
		}
	}
	for _, pat := range opts.ignorePatterns {
		if !doublestar.ValidatePattern(pat) {
			return nil, usageErrorf("invalid ignore pattern %q", pat)
		}
	}

	return &Config{
		Root:             root,
		Format:           normalized,
		Extensions:       append(ruleExts, flagExts...),
		IgnorePatterns:   append(append([]string{}, rules.ignore...), opts.ignorePatterns...),
		RespectGitignore: !opts.ignoreGitignore,
		IncludeHidden:    opts.includeHidden,
		LineNumbers:      opts.lineNumbers,
		Preview:          !opts.noPreview,
		OutputFile:       opts.outputFile,
		OutputMode:       mode,
		Tokens:           opts.tokens,
		Model:            opts.model,
		SkipGitignoreAdd: opts.skipGitignore,
	}, nil
}

// normalizeExtensions strips any leading dot so both "-e go" and
// "-e .go" reach the discovery tool in the form it expects.
func normalizeExtensions(exts []string) ([]string, error) {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		e := strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if e == "" {
			return nil, fmt.Errorf("empty extension filter")
		}
		out = append(out, e)
	}
	return out, nil
}
