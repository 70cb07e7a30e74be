package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/core/mcp/server"
	"github.com/vadiminshakov/factorial/core/tools"
	"github.com/vadiminshakov/factorial/terminal"
	"github.com/vadiminshakov/factorial/ui"
)

const version = "v0.1.0"

func main() {
	var headless = flag.Bool("headless", false, "Read one input per line from stdin and print one result per line")
	var mcpMode = flag.Bool("mcp", false, "Serve the factorial tool over MCP on stdio")
	var setup = flag.Bool("setup", false, "Run the configuration wizard")
	var showVersion = flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println("factorial " + version)
		os.Exit(0)
	}

	if !readline.IsTerminal(int(os.Stdout.Fd())) {
		ui.SetColor(false)
	}

	var (
		cfg config.Config
		err error
	)
	if *setup {
		cfg, err = config.InteractiveSetup()
	} else {
		cfg, err = config.LoadConfigFile()
	}
	if err != nil {
		log.Fatal(ui.Error("failed to load configuration: " + err.Error()))
	}
	tools.SetMaxInput(cfg.MaxInput)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *headless, *mcpMode, flag.Args()); err != nil {
		stop()
		log.Fatal(ui.Error(err.Error()))
	}
}

func run(ctx context.Context, cfg config.Config, headless, mcpMode bool, args []string) error {
	ev := terminal.ToolEvaluator{}

	switch {
	case mcpMode:
		return server.Serve(ctx, version)

	case len(args) > 0:
		return evaluateArgs(ev, args, cfg.GroupDigits)

	case headless:
		return terminal.RunHeadless(ctx, os.Stdin, os.Stdout, ev, cfg.GroupDigits)

	default:
		return terminal.RunTerminal(cfg, ev)
	}
}

// evaluateArgs prints "expr = value" for every argument, reporting failures
// inline and continuing with the rest.
func evaluateArgs(ev terminal.Evaluator, args []string, group bool) error {
	failed := 0
	for _, arg := range args {
		res, err := ev.Evaluate(arg)
		if err != nil {
			ui.ShowError(errors.Wrap(err, arg))
			failed++
			continue
		}
		ui.ShowResult(res.Expr, res.Value, group)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d inputs failed", failed, len(args))
	}
	return nil
}
