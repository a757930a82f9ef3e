package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/calvinalkan/sarray/internal/config"
	"github.com/calvinalkan/sarray/internal/session"

	flag "github.com/spf13/pflag"
)

// ExecCmd returns the exec command.
func ExecCmd(cfg *config.Config, stdin io.Reader) *Command {
	fs := flag.NewFlagSet("exec", flag.ContinueOnError)
	fs.StringP("file", "f", "", "Read commands from `file` instead of stdin")

	return &Command{
		Flags: fs,
		Usage: "exec [-f file]",
		Short: "Run session commands from a script",
		Long: `Run session commands line by line against a fresh array.

Commands are read from stdin, or from --file. Blank lines and lines starting
with # are skipped. Execution stops at the first failing line, including
contract violations such as reading an out-of-range element.

Examples:
  echo 'ramp 20 -1
  sort asc
  show' | sarr exec
  sarr -n 5 exec -f script.sarr`,
		Exec: func(ctx context.Context, io *IO, _ []string) error {
			file, _ := fs.GetString("file")

			return execScript(ctx, io, cfg, stdin, file)
		},
	}
}

func execScript(ctx context.Context, o *IO, cfg *config.Config, stdin io.Reader, file string) error {
	input := stdin

	if file != "" && file != "-" {
		if !filepath.IsAbs(file) {
			file = filepath.Join(cfg.EffectiveCwd, file)
		}

		f, err := os.Open(file) //nolint:gosec // path is from flags
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}

		defer func() { _ = f.Close() }()

		input = f
	}

	if input == nil {
		return nil
	}

	s := session.New(cfg.Length, o)

	scanner := bufio.NewScanner(input)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.Eval(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return fmt.Errorf("reading script: %w", scanErr)
	}

	return nil
}
