// ABOUTME: OS clipboard adapter; plain text via atotto, HTML via platform write tools
// ABOUTME: Reports the generic write as absent when no suitable tool is installed

package system

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	coreerrors "tabclip-api/core/errors"
	"tabclip-api/core/interfaces"
)

// SystemClipboard implements the Clipboard interface against the OS
// clipboard.
type SystemClipboard struct {
	logger interfaces.Logger
}

// New creates a system clipboard adapter.
func New(logger interfaces.Logger) *SystemClipboard {
	return &SystemClipboard{logger: logger}
}

// WriteText places a plain-text payload on the clipboard.
func (c *SystemClipboard) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no plain-text clipboard on this platform: %w", coreerrors.ErrCapabilityAbsent)
	}
	return clipboard.WriteAll(text)
}

// Write places a multi-representation payload on the clipboard. The HTML
// representation is written through a platform tool that supports media
// types; when none is installed the capability is reported absent so the
// delivery chain can fall through.
func (c *SystemClipboard) Write(ctx context.Context, items []interfaces.ClipboardItem) error {
	var html string
	for _, item := range items {
		if item.MIME == "text/html" {
			html = item.Data
		}
	}
	if html == "" {
		return fmt.Errorf("no HTML representation in payload: %w", coreerrors.ErrCapabilityAbsent)
	}

	tool, args, err := htmlWriteCommand()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdin = strings.NewReader(html)
	if out, err := cmd.CombinedOutput(); err != nil {
		c.logger.Warn("HTML clipboard write failed", map[string]interface{}{
			"tool":   tool,
			"error":  err.Error(),
			"output": string(out),
		})
		return fmt.Errorf("%s: %w", tool, err)
	}
	return nil
}

// htmlWriteCommand resolves a tool able to write a text/html clipboard
// target, preferring Wayland's wl-copy over xclip.
func htmlWriteCommand() (string, []string, error) {
	type candidate struct {
		name string
		args []string
	}

	candidates := []candidate{
		{"wl-copy", []string{"--type", "text/html"}},
		{"xclip", []string{"-selection", "clipboard", "-t", "text/html"}},
	}

	for _, c := range candidates {
		if path, err := exec.LookPath(c.name); err == nil {
			return path, c.args, nil
		}
	}
	return "", nil, fmt.Errorf("no HTML clipboard tool found: %w", coreerrors.ErrCapabilityAbsent)
}
