// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Keep error formatting and naming consistent across commands.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poruru-code/hostenv/internal/infra/ui"
	"github.com/poruru-code/hostenv/internal/meta"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	ui.NewConsoleUI(out, false).Info(fmt.Sprintf("✗ %v", err))
	return 1
}

func cliName() string {
	name := strings.TrimSpace(os.Getenv("CLI_CMD"))
	if name == "" {
		name = meta.Slug
	}
	return name
}
