package shell

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/gyonder/shellgo/internal/config"
	"github.com/gyonder/shellgo/internal/ui"
)

// prompt is the shell's fixed prompt string. It is exactly "$ ", with no
// trailing newline and no styling, regardless of color configuration.
const prompt = "$ "

// Shell is the interactive read-eval-print loop.
type Shell struct {
	rl  *readline.Instance
	cfg *config.Config
}

// New builds a Shell using cfg for history size and color behavior.
func New(cfg *config.Config) (*Shell, error) {
	ui.SetEnabled(ui.ColorEnabled(cfg.Color))

	historyPath, err := config.HistoryPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Render(ui.WarningStyle, "warning: history will not persist: "+err.Error()))
		historyPath = ""
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyPath,
		HistoryLimit:    cfg.HistorySize,
		AutoComplete:    NewCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &Shell{rl: rl, cfg: cfg}, nil
}

// Run executes the read-eval-print loop until EOF or an "exit" builtin
// terminates it, returning the process's final exit status.
func (sh *Shell) Run() int {
	defer sh.rl.Close()

	ctx := context.Background()

	for {
		line, err := sh.rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or interrupt
			if err == io.EOF {
				return 0
			}
			continue
		}

		if line == "" {
			continue
		}

		if lineTooLong(line, sh.cfg.LineLengthLimit) {
			reportError(ErrLineTooLong)
			continue
		}

		tokens, err := Tokenize(line)
		if err != nil {
			reportError(err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		pipeline, err := Assemble(tokens)
		if err != nil {
			reportError(err)
			continue
		}

		outcome := Execute(ctx, pipeline, os.Stdin, os.Stdout, os.Stderr)
		if outcome.Exit {
			return outcome.Status
		}
	}
}

func reportError(err error) {
	fmt.Fprintln(os.Stderr, ui.Render(ui.ErrorStyle, err.Error()))
}

// ErrLineTooLong is reported when an input line exceeds the configured
// LineLengthLimit. The whole line is discarded, as with a tokenizer error.
var ErrLineTooLong = fmt.Errorf("syntax error: input line too long")

// lineTooLong reports whether line exceeds limit. A non-positive limit
// disables the check.
func lineTooLong(line string, limit int) bool {
	return limit > 0 && len(line) > limit
}
