package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/xiam/steed"
	"github.com/xiam/steed/lexer"
)

//go:embed sample.steed
var sampleProgram []byte

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "steed: ", 0)

	flags := flag.NewFlagSet("steed", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "path to a YAML config file")
	source := flags.String("f", "", "source file, the embedded sample program is used if empty")
	trace := flags.String("trace", "", "trace format: text, yaml or none")
	debug := flags.Bool("debug", false, "log definitions and calls")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	conf, err := LoadConfig(*configPath)
	if err != nil {
		logger.Printf("%v", err)
		return 2
	}
	if *source != "" {
		conf.Source = *source
	}
	if *trace != "" {
		conf.Trace = *trace
	}
	if *debug {
		conf.Debug = true
	}
	if err := conf.validate(); err != nil {
		logger.Printf("%v", err)
		return 2
	}

	in := sampleProgram
	if conf.Source != "" {
		if in, err = ioutil.ReadFile(conf.Source); err != nil {
			logger.Printf("%v", err)
			return 1
		}
	}

	opts := []steed.Option{steed.WithMaxDepth(conf.MaxDepth)}
	switch conf.Trace {
	case traceText:
		opts = append(opts, steed.WithTracer(steed.NewTextTracer(stdout)))
	case traceYAML:
		opts = append(opts, steed.WithTracer(steed.NewYAMLTracer(stdout)))
	}
	if conf.Debug {
		opts = append(opts, steed.WithLogger(logger))
	}

	if _, err := steed.Run(in, opts...); err != nil {
		var syntaxErr *lexer.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprintf(stderr, "SyntaxError: Found invalid content %q\n", syntaxErr.Invalid())
			return 1
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}
