package terminal

//go:generate mockgen -source=terminal.go -destination=mocks/mock_evaluator.go -package=mocks

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/core/tools"
	"github.com/vadiminshakov/factorial/ui"
)

// Result is one evaluated input line.
type Result struct {
	Expr  string
	Value string
}

// Evaluator turns an input line into a value.
type Evaluator interface {
	Evaluate(line string) (Result, error)
}

// ToolEvaluator sends bare integers to the factorial tool and everything
// else to calc.
type ToolEvaluator struct{}

func (ToolEvaluator) Evaluate(line string) (Result, error) {
	line = strings.TrimSpace(line)

	if n, err := strconv.ParseInt(line, 10, 64); err == nil {
		v, err := tools.Execute("factorial", map[string]interface{}{"n": n})
		if err != nil {
			return Result{}, err
		}
		return Result{Expr: line + "!", Value: v}, nil
	}

	v, err := tools.Execute("calc", map[string]interface{}{"expr": line})
	if err != nil {
		return Result{}, err
	}
	return Result{Expr: line, Value: v}, nil
}

// RunHeadless evaluates one line at a time from in and writes one line per
// result to out. Failures are written as "error: ..." and do not stop the
// loop; "exit", "quit", EOF and ctx cancellation do.
func RunHeadless(ctx context.Context, in io.Reader, out io.Writer, ev Evaluator, group bool) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "exit" || input == "quit" {
			return nil
		}
		if input == "" {
			continue
		}

		res, err := ev.Evaluate(input)
		if err != nil {
			if _, werr := fmt.Fprintf(out, "error: %v\n", err); werr != nil {
				return werr
			}
			continue
		}

		if _, err := fmt.Fprintln(out, ui.FormatNumber(res.Value, group)); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// RunTerminal runs the interactive REPL until the user exits.
func RunTerminal(cfg config.Config, ev Evaluator) error {
	repl, err := ui.NewREPL(cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer repl.Close()
	repl.ShowWelcome()

	for {
		input, shouldExit, reconfigured := repl.ReadInput()
		if shouldExit {
			break
		}

		if reconfigured {
			if updated, err := config.LoadConfigFile(); err != nil {
				ui.ShowError(err)
			} else {
				cfg = updated
				tools.SetMaxInput(cfg.MaxInput)
			}
			continue
		}

		if input == "" {
			continue
		}

		res, err := ev.Evaluate(input)
		if err != nil {
			ui.ShowError(err)
			continue
		}
		ui.ShowResult(res.Expr, res.Value, cfg.GroupDigits)
	}

	return nil
}
