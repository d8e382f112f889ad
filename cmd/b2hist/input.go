package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// recorder is implemented by *group.Group.
type recorder interface {
	RecordN(key string, v, n uint64)
}

// readObservations reads observations from r, one per line, recording
// them in rec. Lines are "value [count]", or "key value [count]" when
// grouped is true. Blank lines and lines beginning with '#' are skipped.
//
// name is used to identify r in error messages.
func readObservations(r io.Reader, name string, grouped bool, rec recorder) (int, error) {
	var n int
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		key, value, count, err := parseLine(line, grouped)
		if err != nil {
			return n, errors.Wrapf(err, "%s:%d", name, lineno)
		}
		rec.RecordN(key, value, count)
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, errors.Wrapf(err, "failed to read %s", name)
	}
	return n, nil
}

func parseLine(line string, grouped bool) (key string, value, count uint64, err error) {
	fields := strings.Fields(line)
	if grouped {
		if len(fields) < 2 || len(fields) > 3 {
			return "", 0, 0, errors.Errorf("expected \"key value [count]\", got %q", line)
		}
		key, fields = fields[0], fields[1:]
	} else if len(fields) > 2 {
		return "", 0, 0, errors.Errorf("expected \"value [count]\", got %q", line)
	}
	value, err = strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return "", 0, 0, errors.Wrap(err, "invalid value")
	}
	count = 1
	if len(fields) == 2 {
		count, err = strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return "", 0, 0, errors.Wrap(err, "invalid count")
		}
	}
	return key, value, count, nil
}
