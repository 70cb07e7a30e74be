package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/vadiminshakov/factorial/core/config"
)

// REPLCommands stores command history and provides REPL functionality
type REPLCommands struct {
	history     []string
	historyFile string
	readline    *readline.Instance
}

func createReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:            "",
		HistoryFile:       historyFile,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
}

// NewREPL creates a new REPL interface
func NewREPL(historyFile string) (*REPLCommands, error) {
	rl, err := createReadline(historyFile)
	if err != nil {
		return nil, err
	}

	return &REPLCommands{
		history:     make([]string, 0),
		historyFile: historyFile,
		readline:    rl,
	}, nil
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("clear"),
	readline.PcItem("history"),
	readline.PcItem("reconfig"),
	readline.PcItem("exit"),
	readline.PcItem("fact("),
)

// Close releases REPL resources
func (r *REPLCommands) Close() {
	if r.readline != nil {
		r.readline.Close()
	}
}

// ShowWelcome prints the welcome message
func (r *REPLCommands) ShowWelcome() {
	fmt.Print("\033[2J\033[H")

	fmt.Println()
	fmt.Println(Header("factorial"))
	fmt.Println()
	fmt.Println(Info("Enter n, n!, or an expression such as fact(10)/fact(8)"))
	fmt.Println(Dim("Available commands: help, clear, history, reconfig, exit"))
	fmt.Println()
}

// GetPrompt returns a styled prompt for user input
func (r *REPLCommands) GetPrompt() string {
	return fmt.Sprintf("%s %s ", BrightBlue("n!"), BrightGreen("❯"))
}

// ReadInput reads a line and handles built-in commands. It returns the line
// to evaluate (empty when there is nothing to do), whether to exit, and
// whether the configuration was just rewritten.
func (r *REPLCommands) ReadInput() (string, bool, bool) {
	r.readline.SetPrompt(r.GetPrompt())

	line, err := r.readline.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", false, false
		} else if err == io.EOF {
			return "", true, false
		}
		return "", true, false
	}

	inputStr := strings.TrimSpace(line)

	if inputStr == "" {
		return "", false, false
	}

	r.history = append(r.history, inputStr)

	switch inputStr {
	case "exit", "quit":
		return "", true, false

	case "help":
		r.showHelp()
		return "", false, false

	case "clear":
		r.clear()
		return "", false, false

	case "history":
		r.showHistory()
		return "", false, false

	case "reconfig":
		if r.reconfig() {
			return "", false, true
		}
		return "", false, false

	default:
		return inputStr, false, false
	}
}

func (r *REPLCommands) showHelp() {
	helpText := `Input:
  10            – 10!
  5!/3!         – expression with postfix factorials
  fact(4)+1     – fact(x) and factorial(x) calls, + - * / and parentheses

Commands:
  help     – show this help
  clear    – clear the screen
  history  – show command history
  reconfig – recreate configuration
  exit     – quit the program`

	fmt.Println(helpText)
}

func (r *REPLCommands) clear() {
	fmt.Print("\033[2J\033[H")
}

func (r *REPLCommands) showHistory() {
	fmt.Println()
	if len(r.history) == 0 {
		fmt.Println(Info("Command history is empty"))
		fmt.Println()
		return
	}

	start := 0
	if len(r.history) > 10 {
		start = len(r.history) - 10
		fmt.Println(Dim("... (showing last 10 commands)"))
	}

	for i := start; i < len(r.history); i++ {
		cmd := r.history[i]
		if len(cmd) > 60 {
			cmd = cmd[:57] + "..."
		}
		fmt.Printf("%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), BrightWhite(cmd))
	}
	fmt.Println()
}

// ShowError prints the error in a formatted style
func ShowError(err error) {
	fmt.Println(Error(err.Error()))
}

// ShowResult prints an evaluated expression.
func ShowResult(expr, value string, group bool) {
	fmt.Println(FormatResult(expr, value, group))
}

// promptui and readline both own the terminal, so readline is closed while
// the wizard runs.
func (r *REPLCommands) reconfig() bool {
	fmt.Println()

	if r.readline != nil {
		r.readline.Close()
	}

	_, err := config.InteractiveSetup()

	rl, reinitErr := createReadline(r.historyFile)
	if reinitErr != nil {
		fmt.Println(Error("failed to reinitialize readline: " + reinitErr.Error()))
		return false
	}
	r.readline = rl

	if err != nil {
		fmt.Println(Error("failed to reconfigure: " + err.Error()))
		fmt.Println()
		return false
	}
	fmt.Println(Success("configuration updated."))
	fmt.Println()
	return true
}
