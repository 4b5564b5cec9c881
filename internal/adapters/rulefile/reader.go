// Package rulefile implements the Makefile-like rule grammar: a trimmed,
// comment-stripped line reader, a parser that turns those lines into
// domain.Rule values and a phony set, a Graph loader that chooses between
// the on-disk cache and a fresh parse, and an atomically-published cache
// writer.
package rulefile

import (
	"bufio"
	"os"
	"strings"

	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// readLines reads path line by line. Each line is trimmed of leading and
// trailing plain spaces only — not tabs, which is what lets the parser tell
// a command line (leading tab) apart from everything else — and then has its
// comment stripped: a '#' as the very first character drops the whole line,
// any other '#' truncates the line from that position onward. Lines left
// empty by either step are dropped.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingRuleFile, "open rule file"), "path", path)
		}
		return nil, zerr.Wrap(err, "open rule file")
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := trimSpaces(sc.Text())
		if line == "" {
			continue
		}

		if line[0] == '#' {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.Wrap(err, "read rule file")
	}
	return lines, nil
}

// trimSpaces trims leading and trailing ' ' characters only, leaving any
// leading tab intact for the parser's command-line check.
func trimSpaces(s string) string {
	return strings.Trim(s, " ")
}
