// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/poruru-code/hostenv/internal/infra/config"
	"github.com/poruru-code/hostenv/internal/infra/envutil"
	"github.com/poruru-code/hostenv/internal/infra/interaction"
	"github.com/poruru-code/hostenv/internal/infra/logging"
	"github.com/poruru-code/hostenv/internal/infra/ui"
	"github.com/poruru-code/hostenv/internal/infra/watch"
	"github.com/poruru-code/hostenv/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to the process defaults.
type Dependencies struct {
	Out            io.Writer
	ErrOut         io.Writer
	Prompter       interaction.Prompter
	Interactive    func() bool
	Getwd          func() (string, error)
	LookupHostname func() (string, bool)
	Logger         *zerolog.Logger
	SignalContext  func() (context.Context, context.CancelFunc)
	Watch          WatchFunc
}

// WatchFunc blocks until ctx is done, calling onChange after files change.
type WatchFunc func(ctx context.Context, files []string, debounce time.Duration, onChange func() error, onError func(error)) error

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Config    string       `short:"c" name:"config" help:"Path to hostenv.yaml (default: ./hostenv.yaml when present)"`
	EnvFile   string       `name:"env-file" help:"Path to .env file"`
	Verbose   bool         `short:"v" help:"Enable debug logging on stderr"`
	LogJSON   bool         `name:"log-json" help:"Write stderr logs as JSON lines"`
	NoEmoji   bool         `name:"no-emoji" help:"Disable emoji output"`
	Init      InitCmd      `cmd:"" help:"Write a hostenv.yaml with default settings"`
	Derive    DeriveCmd    `cmd:"" help:"Print the environment descriptor for a hostname"`
	Append    AppendCmd    `cmd:"" help:"Append environment descriptors to the registry file"`
	Render    RenderCmd    `cmd:"" help:"Render registry data through a template"`
	Templates TemplatesCmd `cmd:"" help:"List builtin templates"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

type (
	// DeriveCmd defines the derive command flags.
	DeriveCmd struct {
		Hostname string `arg:"" optional:"" help:"Hostname (default: HOSTENV_HOSTNAME or prompt)"`
		Format   string `short:"f" enum:"text,json,yaml" default:"text" help:"Output format (text/json/yaml)"`
	}

	// AppendCmd defines the append command flags.
	AppendCmd struct {
		Hostnames []string `arg:"" optional:"" help:"Hostnames to append in order"`
		Registry  string   `short:"r" help:"Registry file (default: from config)"`
	}

	// RenderCmd defines the render command flags.
	RenderCmd struct {
		Registry string `short:"r" help:"Registry file (default: from config)"`
		Template string `short:"t" help:"Builtin template name or template file path"`
		Hostname string `name:"hostname" help:"Append a descriptor in memory before rendering"`
		Output   string `short:"o" help:"Write output to a file instead of stdout"`
		Watch    bool   `short:"w" help:"Re-render when the registry or template changes"`
	}

	// InitCmd defines the init command flags.
	InitCmd struct {
		Plugin   string `help:"Plugin namespace (default: docsify global)"`
		Feature  string `help:"Feature namespace (default: mustache)"`
		Registry string `short:"r" help:"Registry file, relative to the config file"`
		Template string `short:"t" help:"Builtin template name or template file path"`
		Force    bool   `help:"Overwrite an existing config file"`
	}

	TemplatesCmd struct{}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out

	// Handle no arguments: show usage
	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Derive hostname environment descriptors for documentation site templates."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	console := ui.NewConsoleUI(out, !cli.NoEmoji)
	dir, err := deps.Getwd()
	if err != nil {
		return exitWithError(out, fmt.Errorf("resolve working directory: %w", err))
	}

	if _, err := envutil.LoadEnvFile(dir, cli.EnvFile); err != nil {
		console.Warn(fmt.Sprintf("Warning: %v", err))
	}

	logger := logging.New(logging.Options{Out: deps.ErrOut, Verbose: cli.Verbose, JSON: cli.LogJSON})
	if deps.Logger != nil {
		logger = *deps.Logger
	}

	if kctx.Command() == "init" {
		return runInit(commandContext{cli: cli, deps: deps, ui: console, dir: dir, logger: logger})
	}

	cfg, used, err := config.Resolve(dir, absPath(dir, cli.Config))
	if err != nil {
		return exitWithError(out, err)
	}
	logger.Debug().Str("config", used).Str("registry", cfg.Registry).Str("path", cfg.Path().String()).Msg("configuration resolved")

	cmdCtx := commandContext{
		cli:    cli,
		deps:   deps,
		ui:     console,
		cfg:    cfg,
		dir:    dir,
		logger: logger,
	}
	if exitCode, handled := dispatchCommand(kctx.Command(), cmdCtx); handled {
		return exitCode
	}

	console.Warn("unknown command")
	return 1
}

type commandHandler func(commandContext) int

func dispatchCommand(command string, ctx commandContext) (int, bool) {
	handlers := map[string]commandHandler{
		"derive":    runDerive,
		"append":    runAppend,
		"render":    runRender,
		"templates": runTemplates,
		"version":   runVersion,
	}
	name := command
	if fields := strings.Fields(command); len(fields) > 0 {
		name = fields[0]
	}
	if handler, ok := handlers[name]; ok {
		return handler(ctx), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(ctx commandContext) int {
	ctx.ui.Info(version.GetVersion())
	return 0
}

// runNoArgs handles the case when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	console := ui.NewConsoleUI(out, false)
	cmd := cliName()
	console.Info("Usage:")
	console.Info(fmt.Sprintf("  %s init [--plugin <ns>] [--feature <ns>] [--force]", cmd))
	console.Info(fmt.Sprintf("  %s derive [hostname] [--format text|json|yaml]", cmd))
	console.Info(fmt.Sprintf("  %s append [hostname...] [--registry <file>]", cmd))
	console.Info(fmt.Sprintf("  %s render [--template <name|file>] [--output <file>] [--watch]", cmd))
	console.Info("")
	console.Info(fmt.Sprintf("Try: %s --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		console := ui.NewConsoleUI(out, false)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--registry"):
			console.Warn("`-r/--registry` expects a file path.")
			console.Info(fmt.Sprintf("Example: %s append -r .hostenv/registry.json foo-bar.brevlab.com", cmd))
			return 1
		case strings.Contains(msg, "--template"):
			console.Warn("`-t/--template` expects a builtin name or a file path.")
			console.Info(fmt.Sprintf("Builtins: %s templates", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			console.Warn("`--env-file` expects a value. Provide a file path.")
			return 1
		}
	}
	return exitWithError(out, err)
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	if deps.LookupHostname == nil {
		deps.LookupHostname = envutil.LookupHostname
	}
	if deps.Interactive == nil {
		deps.Interactive = func() bool {
			return interaction.IsTerminal(os.Stdin) && interaction.IsTerminal(os.Stdout)
		}
	}
	if deps.SignalContext == nil {
		deps.SignalContext = func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		}
	}
	if deps.Watch == nil {
		deps.Watch = watch.Files
	}
	return deps
}

// absPath resolves a flag path against the working directory.
func absPath(dir, path string) string {
	if strings.TrimSpace(path) == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
