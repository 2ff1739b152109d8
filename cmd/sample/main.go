// Sample demonstrates parsing of named arguments, switches and positional arguments.
//
//	sample -o short -t 10 --debug ./path value
//
// Environment:
//
//	SAMPLE_DEFAULTS   path of a YAML, TOML or JSON file with default argument values
//	SAMPLE_LOG_LEVEL  slog level of parser diagnostics written to stderr (default: warn)
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/cardinalby/go-cmdline"
	"github.com/cardinalby/go-cmdline/defaults"
)

type options struct {
	output    string
	threshold int
	debug     bool
	path      string
	value     string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr, os.Getenv("SAMPLE_LOG_LEVEL"))

	var opts options
	parser, err := newParser(&opts, logger)
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		return 1
	}

	var res cmdline.ParseResult
	if path := os.Getenv("SAMPLE_DEFAULTS"); path != "" {
		values, err := defaults.Load(path)
		if err != nil {
			logger.Error("failed to load defaults", slog.String("path", path), slog.Any("error", err))
			return 1
		}
		res = parser.ParseWithDefaults(values, args)
	} else {
		res = parser.Parse(args)
	}

	if !res.Succeeded {
		printFailure(stderr, res.Message, cmdline.Compose(parser.Configuration()))
		return 2
	}

	_, _ = fmt.Fprintf(stdout, "parsed successfully: output = %s, threshold = %d, debug = %t, path = %s, value = %s\n",
		opts.output, opts.threshold, opts.debug, opts.path, opts.value)
	return 0
}

func newParser(opts *options, logger *slog.Logger) (*cmdline.Parser, error) {
	return cmdline.NewConfigurator().
		WithNamed("o", cmdline.Set(cmdline.String, &opts.output)).
		HavingLongAlias("output").
		Required().
		RestrictedTo("short", "long").
		DescribedBy("method", "specifies the output method.").
		WithNamed("t", cmdline.Set(cmdline.Int, &opts.threshold)).
		HavingLongAlias("threshold").
		DescribedBy("value", "specifies the threshold used in output.").
		WithSwitch("d", func() { opts.debug = true }).
		HavingLongAlias("debug").
		DescribedBy("enables debug mode").
		WithPositional(cmdline.Set(cmdline.String, &opts.path)).
		Required().
		DescribedBy("path", "path to the output file.").
		WithPositional(cmdline.Set(cmdline.String, &opts.value)).
		DescribedBy("value", "some optional value.").
		BuildParser(cmdline.WithLogger(logger))
}

func printFailure(w io.Writer, message string, usage cmdline.Usage) {
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	_, _ = red.Fprintln(w, message)
	_, _ = fmt.Fprintln(w)
	_, _ = bold.Fprint(w, "usage:")
	_, _ = fmt.Fprintln(w, " "+usage.Arguments)
	_, _ = fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, "options:")
	_, _ = fmt.Fprintln(w, cmdline.IndentBy(strings.TrimSuffix(usage.Options, "\n"), 4))
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
