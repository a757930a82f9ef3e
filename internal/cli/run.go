// Package cli implements the sarr command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calvinalkan/sarray/internal/config"

	flag "github.com/spf13/pflag"
)

// Run is the main entry point. Returns exit code.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	globalFlags := flag.NewFlagSet("sarr", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.SetOutput(&strings.Builder{})

	flagHelp := globalFlags.BoolP("help", "h", false, "Show help")
	flagCwd := globalFlags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := globalFlags.StringP("config", "c", "", "Use specified config `file`")
	flagLen := globalFlags.StringP("len", "n", "", "Array `length` (overrides config)")

	if len(args) > 0 {
		args = args[1:]
	}

	err := globalFlags.Parse(args)
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, globalFlags, nil)

		return 1
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: *flagCwd,
		ConfigPath:      *flagConfig,
		LengthOverride:  *flagLen,
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	commands := []*Command{
		DemoCmd(),
		ExecCmd(&cfg, stdin),
		ReplCmd(&cfg, stdin),
		PrintConfigCmd(&cfg),
	}

	commandArgs := globalFlags.Args()

	if *flagHelp || len(commandArgs) == 0 {
		printUsage(out, globalFlags, commands)

		return 0
	}

	name := commandArgs[0]

	var cmd *Command

	for _, candidate := range commands {
		if candidate.Name() == name {
			cmd = candidate

			break
		}
	}

	if cmd == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", errUnknownCommand, name))
		fprintln(errOut)
		printUsage(errOut, globalFlags, commands)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	o := NewIO(out, errOut)

	exitCode := cmd.Run(ctx, o, commandArgs[1:])

	finishCode := o.Finish()
	if exitCode == 0 {
		exitCode = finishCode
	}

	return exitCode
}

var errUnknownCommand = errors.New("unknown command")

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globalFlags *flag.FlagSet, commands []*Command) {
	fprintln(w, `sarr - fixed-size array with checked element handles

Usage: sarr [flags] <command> [args]`)

	var buf strings.Builder

	globalFlags.SetOutput(&buf)
	globalFlags.PrintDefaults()

	fprintln(w)
	fprintln(w, "Global flags:")
	_, _ = io.WriteString(w, buf.String())

	if len(commands) == 0 {
		return
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine())
	}

	fprintln(w)
	fprintln(w, "Run 'sarr <command> --help' for command flags.")
}
