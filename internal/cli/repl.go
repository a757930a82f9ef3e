package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/calvinalkan/sarray/internal/config"
	"github.com/calvinalkan/sarray/internal/history"
	"github.com/calvinalkan/sarray/internal/session"

	flag "github.com/spf13/pflag"
)

// ReplCmd returns the repl command.
func ReplCmd(cfg *config.Config, stdin io.Reader) *Command {
	return &Command{
		Flags: flag.NewFlagSet("repl", flag.ContinueOnError),
		Usage: "repl",
		Short: "Start an interactive array session",
		Long: `Start an interactive session over a fresh array of --len elements.

Type 'help' for session commands and 'exit' to leave. Failing commands,
including contract violations, are reported and the session continues.

On a terminal, input has line editing, tab completion and history. History
is saved to history_file (see print-config); set it to "" to disable.`,
		Exec: func(ctx context.Context, io *IO, _ []string) error {
			return execRepl(ctx, io, cfg, stdin)
		},
	}
}

// lineReader is the input side of the REPL. *liner.State implements it.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// scriptReader reads REPL input from a non-terminal stream.
type scriptReader struct {
	scanner *bufio.Scanner
}

func (r *scriptReader) Prompt(string) (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}

	if err := r.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (*scriptReader) AppendHistory(string) {}

func (*scriptReader) Close() error { return nil }

type repl struct {
	io      *IO
	cfg     *config.Config
	session *session.Session
	input   lineReader
	entered []string
}

func execRepl(ctx context.Context, o *IO, cfg *config.Config, stdin io.Reader) error {
	r := &repl{
		io:      o,
		cfg:     cfg,
		session: session.New(cfg.Length, o),
	}

	interactive := false

	if f, ok := stdin.(*os.File); ok && f == os.Stdin && isTerminal(int(f.Fd())) {
		interactive = true
		r.input = r.newLiner()
	} else {
		if stdin == nil {
			stdin = strings.NewReader("")
		}

		r.input = &scriptReader{scanner: bufio.NewScanner(stdin)}
	}

	defer func() { _ = r.input.Close() }()

	if interactive {
		o.Printf("sarr - fixed-size array session (len=%d)\n", cfg.Length)
		o.Println("Type 'help' for available commands.")
		o.Println()
	}

	err := r.loop(ctx)

	r.saveHistory()

	return err
}

func (r *repl) newLiner() *liner.State {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(completer)

	if r.cfg.HistoryPath == "" {
		return state
	}

	lines, err := history.Load(r.cfg.HistoryPath)
	if err != nil {
		r.io.Warn("cannot load history: "+err.Error(), "fix or remove "+r.cfg.HistoryPath)

		return state
	}

	if len(lines) > 0 {
		_, _ = state.ReadHistory(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	}

	return state
}

func (r *repl) loop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := r.input.Prompt(r.cfg.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.input.AppendHistory(line)
		r.entered = append(r.entered, line)

		switch line {
		case "exit", "quit", "q":
			return nil
		}

		evalErr := r.session.Eval(line)
		if evalErr != nil {
			r.io.ErrPrintln("error:", evalErr)
		}
	}
}

func (r *repl) saveHistory() {
	if r.cfg.HistoryPath == "" {
		return
	}

	err := history.Append(r.cfg.HistoryPath, r.entered, history.DefaultMaxLines)
	if err != nil {
		r.io.Warn("cannot save history: "+err.Error(), `check permissions or set history_file to "" to disable`)
	}
}

// completer provides tab completion for session commands.
func completer(line string) []string {
	var matches []string

	for _, name := range append(session.Commands(), "exit", "quit") {
		if strings.HasPrefix(name, line) {
			matches = append(matches, name)
		}
	}

	return matches
}
