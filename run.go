package main

import (
	"io"
	"os"
	"path/filepath"
)

type options struct {
	outputPath string
}

type cliApp struct {
	stdout io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	if argv == nil {
		// cobra falls back to os.Args for a nil slice.
		argv = []string{}
	}
	cmd.SetArgs(argv)
	return cmd.Execute()
}

// execute assembles every path in order. Nothing is written unless all
// inputs were read successfully.
func (app *cliApp) execute(paths []string) error {
	if len(paths) == 0 {
		return ErrNoInput
	}
	asm := NewAssembler()
	for _, path := range paths {
		if err := asm.AddFile(path); err != nil {
			return err
		}
	}
	return writeOutput(app.opts.outputPath, app.stdout, asm.Bytes())
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
