// Where: internal/infra/ui/ui.go
// What: High-level output surface used by command handlers.
// Why: Let handlers print blocks and raw payloads without formatting details.
package ui

import (
	"fmt"
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes the output helpers used by command handlers.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
	Raw(payload string)
}

// NewConsoleUI returns a UserInterface backed by Console.
func NewConsoleUI(out io.Writer, emoji bool) UserInterface {
	return consoleUI{out: out, console: NewWithEmoji(out, emoji)}
}

type consoleUI struct {
	out     io.Writer
	console *Console
}

func (c consoleUI) Info(msg string)    { c.console.Info(msg) }
func (c consoleUI) Warn(msg string)    { c.console.Warn(msg) }
func (c consoleUI) Success(msg string) { c.console.Success(msg) }

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.Header(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
}

// Raw writes payload unchanged, so machine-readable output stays parseable.
func (c consoleUI) Raw(payload string) {
	fmt.Fprint(c.out, payload)
}
