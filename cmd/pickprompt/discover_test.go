package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestDiscoveryArgs(t *testing.T) {
	cases := map[string]struct {
		cfg  Config
		want []string
	}{
		"defaults": {
			cfg:  Config{Root: ".", RespectGitignore: true},
			want: []string{"--type", "f", "--exclude", ".git", ".", "."},
		},
		"hidden and no-ignore": {
			cfg:  Config{Root: "/project", IncludeHidden: true},
			want: []string{"--type", "f", "--exclude", ".git", "--no-ignore", "--hidden", ".", "/project"},
		},
		"extensions in order": {
			cfg:  Config{Root: "/project", RespectGitignore: true, Extensions: []string{"py", "js"}},
			want: []string{"--type", "f", "--exclude", ".git", "--extension", "py", "--extension", "js", ".", "/project"},
		},
		"ignore patterns in order": {
			cfg:  Config{Root: ".", RespectGitignore: true, IgnorePatterns: []string{"vendor/**", "*.lock"}},
			want: []string{"--type", "f", "--exclude", ".git", "--exclude", "vendor/**", "--exclude", "*.lock", ".", "."},
		},
	}
	for name, tc := range cases {
		got := discoveryArgs(&tc.cfg)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: discoveryArgs = %v, want %v", name, got, tc.want)
		}
	}
}

func TestShellQuote(t *testing.T) {
	cases := map[string]string{
		"plain.txt":     "plain.txt",
		"a/b-c_d.go":    "a/b-c_d.go",
		"":              "''",
		"has space":     "'has space'",
		"*.go":          "'*.go'",
		"a;rm -rf":      "'a;rm -rf'",
		"don't":         `'don'\''t'`,
		"$(whoami).txt": `'$(whoami).txt'`,
	}
	for in, want := range cases {
		if got := shellQuote(in); got != want {
			t.Fatalf("shellQuote(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestDiscoveryCommandString(t *testing.T) {
	cfg := &Config{Root: "my project", RespectGitignore: true, IgnorePatterns: []string{"*.log"}}
	got := discoveryCommandString("/usr/bin/fd", discoveryArgs(cfg))
	want := "/usr/bin/fd --type f --exclude .git --exclude '*.log' . 'my project'"
	if got != want {
		t.Fatalf("discoveryCommandString = %s, want %s", got, want)
	}
	if strings.Contains(got, "  ") {
		t.Fatalf("unexpected double space in %s", got)
	}
}
