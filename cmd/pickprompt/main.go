package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var opts options
var setDefaultOutput string

var rootCmd = &cobra.Command{
	Use:   "pickprompt [directory]",
	Short: "Pick files interactively and pack them into an LLM prompt",
	Long: `Pickprompt lists files under a directory with fd, lets you pick a
subset in fzf, formats the picked files with files-to-prompt, and puts
the result on the clipboard (or into a file, or on stdout).`,
	Args:          cobra.ArbitraryArgs,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if setDefaultOutput != "" {
			if err := writeHomeDefaultOutputMode(setDefaultOutput); err != nil {
				return err
			}
			successMsg(fmt.Sprintf("default output mode set to %s", setDefaultOutput))
			return nil
		}
		return run(args)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: cxml, markdown, or plain (default cxml)")
	rootCmd.Flags().StringArrayVarP(&opts.extensions, "extension", "e", nil, "only list files with this extension (repeatable)")
	rootCmd.Flags().BoolVarP(&opts.includeHidden, "include-hidden", "i", false, "include hidden files in the listing")
	rootCmd.Flags().BoolVarP(&opts.ignoreGitignore, "ignore-gitignore", "g", false, "list files that .gitignore would exclude")
	rootCmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "write the result to a file instead of the clipboard")
	rootCmd.Flags().BoolVarP(&opts.noCopy, "no-copy", "n", false, "print the result to stdout instead of copying")
	rootCmd.Flags().BoolVarP(&opts.lineNumbers, "line-numbers", "l", false, "add line numbers to file contents")
	rootCmd.Flags().BoolVarP(&opts.noPreview, "no-preview", "p", false, "disable the preview pane in the picker")
	rootCmd.Flags().StringArrayVar(&opts.ignorePatterns, "ignore", nil, "exclude paths matching this glob (repeatable)")
	rootCmd.Flags().BoolVarP(&opts.sshCopy, "ssh-copy", "s", false, "copy via the terminal with an OSC 52 escape sequence")
	rootCmd.Flags().BoolVarP(&opts.tokens, "tokens", "t", false, "report the token count of the result")
	rootCmd.Flags().StringVar(&opts.model, "model", "gpt-4o", "model whose tokenizer is used for --tokens")
	rootCmd.Flags().StringVar(&opts.profile, "profile", "", "profile to apply from the .pickprompt rule file")
	rootCmd.Flags().BoolVar(&opts.skipGitignore, "skip-gitignore", false, "do not add the output file to .gitignore")
	rootCmd.Flags().StringVar(&setDefaultOutput, "set-default-output", "", "persist the default output mode (print, copy, or ssh-copy) and exit")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}

func run(args []string) error {
	cfg, err := buildConfig(args, opts)
	if err != nil {
		return err
	}

	tools, err := resolveTools()
	if err != nil {
		return err
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory %s does not exist", cfg.Root)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", cfg.Root)
	}

	selection, err := pickFiles(tools, cfg, discoveryArgs(cfg))
	if err != nil {
		if errors.Is(err, errPickCancelled) {
			warnMsg("selection cancelled")
			return nil
		}
		return err
	}

	content, err := formatSelection(tools.formatter, cfg, selection)
	if err != nil {
		return err
	}

	if err := deliver(cfg, content); err != nil {
		return err
	}

	if cfg.Tokens {
		count, err := countTokens(content, cfg.Model)
		if err != nil {
			warnMsg(fmt.Sprintf("token count unavailable: %v", err))
		} else {
			infoMsg(fmt.Sprintf("%d tokens (%s)", count, cfg.Model))
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var uerr *usageError
		var derr *depError
		switch {
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
		case errors.As(err, &derr):
			errorMsg(err, derr.hints()...)
		case errors.Is(err, errEmptySelection):
			warnMsg(err.Error())
		default:
			errorMsg(err)
		}
		os.Exit(1)
	}
}
