// Where: rfnoc-inst/internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis, colors, and indentation across commands.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
	ColorEnabled bool
}

// NewWithOptions creates a Console with explicit emoji and color settings.
func NewWithOptions(out io.Writer, emoji, colored bool) *Console {
	return &Console{Out: out, EmojiEnabled: emoji, ColorEnabled: colored}
}

// Header prints a section header with an emoji.
// Example: 🔧 Build configuration.
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// BlockStart starts a logical block with a blank line and a header.
func (c *Console) BlockStart(emoji, title string) {
	fmt.Fprintln(c.Out)
	c.Header(emoji, title)
}

// BlockEnd ends a logical block.
func (c *Console) BlockEnd() {
	fmt.Fprintln(c.Out)
}

// Item prints a key-value item with indentation.
// Example:    Key: Value.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-20s %v\n", key+":", value)
}

// ItemPlain prints a generic indented line.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	prefix := c.emojiPrefix("✅")
	if prefix == "" {
		prefix = "[ok] "
	}
	c.print(color.FgGreen, prefix+msg)
}

// Info prints an info message.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s\n", msg)
}

// Warn prints a warning message with an emoji.
func (c *Console) Warn(msg string) {
	prefix := c.emojiPrefix("⚠️")
	if prefix == "" {
		prefix = "[warn] "
	}
	c.print(color.FgYellow, prefix+msg)
}

// Error prints an error message prefixed with a cross.
func (c *Console) Error(msg string) {
	c.print(color.FgRed, "✗ "+msg)
}

func (c *Console) print(attr color.Attribute, line string) {
	painter := color.New(attr)
	if c.ColorEnabled {
		painter.EnableColor()
	} else {
		painter.DisableColor()
	}
	_, _ = painter.Fprintln(c.Out, line)
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
