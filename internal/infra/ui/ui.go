// Where: rfnoc-inst/internal/infra/ui/ui.go
// What: UserInterface used by command handlers.
// Why: Keep terminal detection out of the handlers.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/poruru/rfnoc-inst/internal/constants"
	"github.com/poruru/rfnoc-inst/internal/infra/envutil"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by commands.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Error(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewUI returns a UserInterface whose emoji and color follow the writer.
func NewUI(out io.Writer) UserInterface {
	decorated := Decorated(out)
	return cliUI{out: out, console: NewWithOptions(out, decorated, decorated)}
}

// Decorated reports whether out is a terminal that accepts emoji and color.
// RFNOC_NO_EMOJI, NO_COLOR and TERM=dumb turn decoration off.
func Decorated(out io.Writer) bool {
	if envutil.GetHostEnv(constants.HostSuffixNoEmoji) != "" {
		return false
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return false
	}
	if strings.ToLower(strings.TrimSpace(os.Getenv("TERM"))) == "dumb" {
		return false
	}
	file, ok := out.(*os.File)
	if !ok || file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type cliUI struct {
	out     io.Writer
	console *Console
}

func (u cliUI) Info(msg string) {
	u.console.Info(msg)
}

func (u cliUI) Warn(msg string) {
	u.console.Warn(msg)
}

func (u cliUI) Success(msg string) {
	u.console.Success(msg)
}

func (u cliUI) Error(msg string) {
	u.console.Error(msg)
}

func (u cliUI) Block(emoji, title string, rows []KeyValue) {
	u.console.BlockStart(emoji, title)
	for _, kv := range rows {
		u.console.Item(kv.Key, kv.Value)
	}
	u.console.BlockEnd()
}
