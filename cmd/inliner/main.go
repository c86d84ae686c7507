package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"vimagination.zapto.org/inliner"
	"vimagination.zapto.org/javascript"
	"vimagination.zapto.org/parser"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		input, output, base string
		check               bool
	)

	flag.StringVar(&input, "i", "", "input file")
	flag.StringVar(&output, "o", "-", "output file")
	flag.StringVar(&base, "b", "", "stylesheet base dir")
	flag.BoolVar(&check, "c", false, "parse output as a javascript module")
	flag.Parse()

	if input == "" {
		return errors.New("no input file")
	}

	if output == "" {
		output = "-"
	}

	if base == "" {
		base = filepath.Dir(input)
	}

	base, err := filepath.Abs(base)
	if err != nil {
		return fmt.Errorf("error getting absolute path for base: %w", err)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	source, err := inliner.Inline(string(data), inliner.Loader(inliner.OSLoad(base)))
	if err != nil {
		return fmt.Errorf("error processing script: %w", err)
	}

	if check {
		tks := parser.NewStringTokeniser(source)

		if _, err := javascript.ParseModule(&tks); err != nil {
			return fmt.Errorf("error validating output: %w", err)
		}
	}

	var of *os.File

	if output == "-" {
		of = os.Stdout
	} else if of, err = os.Create(output); err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}

	if _, err = of.WriteString(source); err != nil {
		return fmt.Errorf("error writing to output: %w", err)
	} else if err = of.Close(); err != nil {
		return fmt.Errorf("error closing output: %w", err)
	}

	return nil
}
