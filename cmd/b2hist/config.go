package main

import (
	"flag"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

const (
	envFormat     = "B2HIST_FORMAT"
	envAllBuckets = "B2HIST_ALL_BUCKETS"
)

type outputFormat string

const (
	formatText  outputFormat = "text"
	formatJSON  outputFormat = "json"
	formatDebug outputFormat = "debug"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatText, formatJSON, formatDebug:
		return f, nil
	}
	return "", errors.Errorf("invalid format %q (expected text, json or debug)", s)
}

type options struct {
	format  outputFormat
	all     bool
	grouped bool
	verbose bool
	files   []string
}

// parseOptions parses command line arguments, using the environment
// for defaults. Flags override environment variables.
func parseOptions(args []string, getenv func(string) string, stderr io.Writer) (options, error) {
	format, err := initialFormat(getenv)
	if err != nil {
		return options{}, err
	}
	all, err := initialAllBuckets(getenv)
	if err != nil {
		return options{}, err
	}

	var opts options
	var formatFlag string
	fs := flag.NewFlagSet("b2hist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&formatFlag, "format", string(format), "output format: text, json or debug")
	fs.BoolVar(&opts.all, "all", all, "print empty buckets")
	fs.BoolVar(&opts.grouped, "group", false, "read \"key value [count]\" lines, keeping one histogram per key")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.format, err = parseFormat(formatFlag); err != nil {
		return options{}, errors.Wrap(err, "failed to parse -format")
	}
	opts.files = fs.Args()
	return opts, nil
}

func initialFormat(getenv func(string) string) (outputFormat, error) {
	value := getenv(envFormat)
	if value == "" {
		return formatText, nil
	}
	format, err := parseFormat(value)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse %s", envFormat)
	}
	return format, nil
}

func initialAllBuckets(getenv func(string) string) (bool, error) {
	value := getenv(envAllBuckets)
	if value == "" {
		return false, nil
	}
	all, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(err, "failed to parse %s", envAllBuckets)
	}
	return all, nil
}
