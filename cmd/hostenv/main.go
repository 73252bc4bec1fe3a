// Where: cmd/hostenv/main.go
// What: CLI entrypoint.
// Why: Execute hostenv commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru-code/hostenv/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
