package cmdline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ParseCommandLine parses the command-line arguments from os.Args[1:] against `configuration`
func ParseCommandLine(configuration *Configuration, opts ...ParserOption) ParseResult {
	return NewParser(configuration, opts...).Parse(os.Args[1:])
}

// MustParseCommandLine parses the command-line arguments like ParseCommandLine.
// On failure, it prints the message and the usage of `configuration` to os.Stderr and exits
// with status 2, following flag.ExitOnError.
func MustParseCommandLine(configuration *Configuration, opts ...ParserOption) ParseResult {
	res := ParseCommandLine(configuration, opts...)
	if !res.Succeeded {
		_, _ = fmt.Fprintln(os.Stderr, res.Message)
		_ = PrintUsage(os.Stderr, configuration)
		os.Exit(2)
	}
	return res
}

// PrintUsage prints the help screen of `configuration` for the running program to `w`
func PrintUsage(w io.Writer, configuration *Configuration) error {
	return Compose(configuration).Fprint(w, programName())
}

func programName() string {
	if len(os.Args) == 0 {
		return ""
	}
	return filepath.Base(os.Args[0])
}
