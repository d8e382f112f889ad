// Command b2hist reads integer observations and prints them as a
// histogram with power-of-2 sized buckets.
//
// Usage:
//
//	b2hist [-format text|json|debug] [-all] [-group] [-v] [file...]
//
// Each input line holds "value [count]", or "key value [count]" with
// -group. Standard input is read when no files are given.
package main

import (
	"io"
	"log"
	"os"

	"github.com/int08h/b2histogram/group"
)

func main() {
	logger := log.New(os.Stderr, "[b2hist] ", 0)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv, logger))
}

func run(
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	getenv func(string) string,
	stdlog *log.Logger,
) int {
	opts, err := parseOptions(args, getenv, stderr)
	if err != nil {
		stdlog.Printf("[ERROR] %s", err)
		return 2
	}
	return runOptions(opts, stdin, stdout, stdLogger{l: stdlog, debug: opts.verbose})
}

func runOptions(opts options, stdin io.Reader, stdout io.Writer, logger Logger) int {
	var g group.Group
	if len(opts.files) == 0 {
		n, err := readObservations(stdin, "<stdin>", opts.grouped, &g)
		if err != nil {
			logger.Errorf("%s", err)
			return 1
		}
		logger.Debugf("read %d observations from <stdin>", n)
	}
	for _, name := range opts.files {
		if err := readFile(name, opts.grouped, &g, logger); err != nil {
			logger.Errorf("%s", err)
			return 1
		}
	}
	if err := writeReport(stdout, opts, &g); err != nil {
		logger.Errorf("failed to write report: %s", err)
		return 1
	}
	return 0
}

func readFile(name string, grouped bool, g *group.Group, logger Logger) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	n, err := readObservations(f, name, grouped, g)
	if err != nil {
		return err
	}
	logger.Debugf("read %d observations from %s", n, name)
	return nil
}
