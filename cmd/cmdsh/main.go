package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdkit/internal/app"
	"github.com/footprint-tools/cmdkit/internal/config"
	"github.com/footprint-tools/cmdkit/internal/console"
	"github.com/footprint-tools/cmdkit/internal/dispatchers"
)

type options struct {
	noColor bool
	noPager bool
	noWatch bool
	pager   string
	envFile []string
	list    bool
	script  string
	args    []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// parseArgs reads the flags. Parsing stops at the first command token so
// that "cmdsh sum -1 2" keeps -1 as an argument.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("cmdsh", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: cmdsh [flags] [command [arguments...]]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Without a command, lines are read from stdin, or an interactive")
		fmt.Fprintln(stderr, "shell starts when stdin is a terminal.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&opts.noPager, "no-pager", false, "never page long output")
	fs.BoolVar(&opts.noWatch, "no-watch", false, "do not reload the choices file when it changes")
	fs.StringVar(&opts.pager, "pager", "", "pager command for long output")
	fs.StringSliceVar(&opts.envFile, "env-file", nil, "dotenv files to load (default ./.env when present)")
	fs.BoolVarP(&opts.list, "list", "l", false, "list the commands and exit")
	fs.StringVarP(&opts.script, "file", "f", "", "read command lines from a file")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.args = fs.Args()
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return console.ExitOK
		}
		return 2
	}

	settings, err := config.Load(opts.envFile...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return console.ExitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt, err := app.New(ctx, settings, app.Options{
		PagerDisabled: opts.noPager,
		PagerOverride: opts.pager,
		StyleEnabled:  !opts.noColor && isTerminal(stdout),
		Watch:         !opts.noWatch,
		Output:        stdout,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return console.ExitError
	}

	code := execute(rt, opts, stdin, stdout, stderr)

	// Close waits for async commands still running.
	if err := rt.Close(); err != nil {
		fmt.Fprintln(stderr, err)
	}
	return code
}

func execute(rt *app.Runtime, opts options, stdin io.Reader, stdout, stderr io.Writer) int {
	c := rt.Console

	switch {
	case opts.list:
		rt.App.Output.Pager(dispatchers.HelpText(rt.Tree, nil, rt.Settings.Prefix, nil))
		return console.ExitOK

	case len(opts.args) > 0:
		line := rt.Settings.Prefix + strings.Join(opts.args, " ")
		res, _ := c.Execute(line, c.Print)
		c.Print(res)
		return console.ExitCode(res)

	case opts.script != "":
		f, err := os.Open(opts.script)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return console.ExitError
		}
		defer f.Close()
		return runLines(c, f, stderr)

	case isTerminal(stdin) && isTerminal(stdout):
		code, err := c.Shell()
		if err != nil {
			fmt.Fprintln(stderr, err)
		}
		return code

	default:
		return runLines(c, stdin, stderr)
	}
}

func runLines(c *console.Console, r io.Reader, stderr io.Writer) int {
	code, err := c.RunLines(r)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	return code
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
