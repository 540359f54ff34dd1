package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// maybeAddToGitignore appends the output file to the search root's
// .gitignore so generated prompt dumps do not end up committed. It
// returns the appended line, or "" when nothing was added: the file
// lives outside the root, the root has no .gitignore, or an existing
// rule already matches it.
func maybeAddToGitignore(root, outputFile string) (string, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	outAbs, err := filepath.Abs(outputFile)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(rootAbs, outAbs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", nil
	}
	rel = filepath.ToSlash(rel)

	gitignorePath := filepath.Join(root, ".gitignore")
	data, err := os.ReadFile(gitignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	matcher, err := ignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", gitignorePath, err)
	}
	if matcher.MatchesPath(rel) {
		return "", nil
	}

	line := rel + "\n"
	if len(data) > 0 && data[len(data)-1] != '\n' {
		line = "\n" + line
	}
	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return "", fmt.Errorf("failed to update %s: %w", gitignorePath, err)
	}
	return rel, nil
}
