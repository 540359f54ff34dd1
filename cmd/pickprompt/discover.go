package main

import (
	"strings"
)

// discoveryArgs builds the fd argument vector for the configured
// filters. The .git exclusion is unconditional. The match-all pattern
// and the search root come last, in fd's positional order.
func discoveryArgs(cfg *Config) []string {
	args := []string{"--type", "f", "--exclude", ".git"}
	if !cfg.RespectGitignore {
		args = append(args, "--no-ignore")
	}
	if cfg.IncludeHidden {
		args = append(args, "--hidden")
	}
	for _, ext := range cfg.Extensions {
		args = append(args, "--extension", ext)
	}
	for _, pat := range cfg.IgnorePatterns {
		args = append(args, "--exclude", pat)
	}
	return append(args, ".", cfg.Root)
}

func shellSafe(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-' || r == '/' || r == ':' || r == '=' || r == ',' || r == '+' || r == '@' || r == '%':
		default:
			return false
		}
	}
	return s != ""
}

// shellQuote renders s safely for a POSIX shell command line. Only the
// picker's reload binding needs this, because the picker hands that
// string to a shell; everything else runs from argument vectors.
func shellQuote(s string) string {
	if shellSafe(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// discoveryCommandString renders the discovery invocation as a single
// shell command for the picker's reload binding.
func discoveryCommandString(findPath string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, shellQuote(findPath))
	for _, arg := range args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}
