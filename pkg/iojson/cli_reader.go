package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader reads command input from the file named by its flag, or from
// stdin when the flag is unset and stdin is not a terminal.
type FileReader struct {
	fileFlagValue string
	stdin         *os.File
}

func (fr *FileReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to input file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// SetPath overrides the flag value, e.g. with a positional argument.
func (fr *FileReader) SetPath(path string) {
	if path != "" {
		fr.fileFlagValue = path
	}
}

// Path returns the file path, or "-" when input comes from stdin.
func (fr *FileReader) Path() string {
	if fr.fileFlagValue != "" {
		return fr.fileFlagValue
	}
	return "-"
}

func (fr *FileReader) input() *os.File {
	if fr.stdin != nil {
		return fr.stdin
	}
	return os.Stdin
}

// Provided reports whether any input is available.
func (fr *FileReader) Provided() bool {
	return fr.fileFlagValue != "" || !term.IsTerminal(int(fr.input().Fd()))
}

// Read returns the raw input bytes.
func (fr *FileReader) Read() ([]byte, error) {
	var reader io.Reader

	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		in := fr.input()
		if term.IsTerminal(int(in.Fd())) {
			return nil, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe input")
		}
		reader = in
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
