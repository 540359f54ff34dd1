package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

type clipboardTool struct {
	name string
	path string
	args []string
}

// findClipboardTool probes for a clipboard utility in a fixed
// preference order. When none is found it returns the candidate names
// that were tried, so the caller can degrade with a useful warning.
func findClipboardTool() (*clipboardTool, []string) {
	switch runtime.GOOS {
	case "darwin":
		if path, _ := exec.LookPath("pbcopy"); path != "" {
			return &clipboardTool{name: "pbcopy", path: path}, nil
		}
		return nil, []string{"pbcopy"}
	case "windows":
		if path, _ := exec.LookPath("clip"); path != "" {
			return &clipboardTool{name: "clip", path: path}, nil
		}
		return nil, []string{"clip"}
	default:
		if path, _ := exec.LookPath("wl-copy"); path != "" {
			return &clipboardTool{name: "wl-copy", path: path}, nil
		}
		if path, _ := exec.LookPath("xclip"); path != "" {
			return &clipboardTool{name: "xclip", path: path, args: []string{"-selection", "clipboard"}}, nil
		}
		if path, _ := exec.LookPath("xsel"); path != "" {
			return &clipboardTool{name: "xsel", path: path, args: []string{"--clipboard", "--input"}}, nil
		}
		if path, _ := exec.LookPath("clip.exe"); path != "" {
			return &clipboardTool{name: "clip.exe", path: path}, nil
		}
		return nil, []string{"wl-copy", "xclip", "xsel", "clip.exe"}
	}
}

// runClipboardCommand pipes data into the utility's stdin.
func runClipboardCommand(tool *clipboardTool, data string) error {
	cmd := exec.Command(tool.path, tool.args...)
	cmd.Stdin = strings.NewReader(data)
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s failed: %s", tool.name, msg)
		}
		return fmt.Errorf("%s failed: %w", tool.name, err)
	}
	return nil
}

// osc52Sequence wraps the payload for the terminal's own clipboard
// handling, with the extra passthrough framing tmux and screen need.
func osc52Sequence(data string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(data))
	seq := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)
	if os.Getenv("TMUX") != "" {
		return "\x1bPtmux;" + seq + "\x1b\\"
	}
	if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		return "\x1bP" + seq + "\x1b\\"
	}
	return seq
}

func copyToOSC52(data string) error {
	if _, err := io.WriteString(os.Stdout, osc52Sequence(data)); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}
