package main

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/healeycodes/barebones/pkg/barebones"
)

const usage = "usage: barebones [-t] [-o text|yaml] [-v] <file>"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	red := color.New(color.FgRed)

	opts, optind, err := getopt.Getopts(args, "hto:v")
	if err != nil {
		red.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usage)
		return 2
	}
	trace := false
	format := "text"
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			fmt.Fprintln(stdout, usage)
			return 0
		case 't':
			trace = true
		case 'o':
			format = opt.Value
		case 'v':
			fmt.Fprintf(stdout, "barebones %v\n", barebones.VERSION)
			return 0
		}
	}
	if format != "text" && format != "yaml" {
		red.Fprintf(stderr, "unknown output format: %v\n", format)
		return 2
	}

	positional := args[optind:]
	if len(positional) == 0 || positional[0] == "" {
		red.Fprintln(stderr, "missing file argument")
		fmt.Fprintln(stderr, usage)
		return 2
	}
	filename := positional[0]

	source, err := barebones.ReadProgram(filename)
	if err != nil {
		red.Fprintf(stderr, "while trying to read: %v: %v\n", filename, err)
		return 1
	}

	options := []barebones.Option{}
	if trace {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: color.NoColor}).
			Level(zerolog.TraceLevel)
		options = append(options, barebones.WithLogger(logger))
	}

	store, err := barebones.RunProgram(filename, source, options...)
	if err != nil {
		red.Fprintf(stderr, "uh oh.. while running: %v\n", err)
		return 1
	}

	if err := render(stdout, store, format); err != nil {
		red.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func render(w io.Writer, store barebones.Store, format string) error {
	if format == "yaml" {
		out, err := yaml.Marshal(map[string]int(store))
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	color.New(color.Bold).Fprintln(w, "Finishing status:")
	for _, name := range store.Names() {
		fmt.Fprintf(w, "%v = %v\n", name, store[name])
	}
	return nil
}
