package rulefile

import (
	"strings"

	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseResult is the flat output of parsing a rule file: the rule list in
// source order plus the phony names collected from every .PHONY line.
type parseResult struct {
	Phony []string
	Rules []domain.Rule
}

// parseLines turns the already-trimmed, comment-stripped lines from
// readLines into a parseResult. It recognizes three line shapes:
//
//   - ".PHONY: name1 name2 ..." adds names to the phony set.
//   - "TARGET: dep1 dep2 ..." starts a new rule, ending any rule in progress.
//   - a line starting with a literal tab is a command for the current rule.
//
// Any command line before the first rule, or any non-empty line with
// neither a tab prefix nor a ':' is a fatal parse error.
func parseLines(lines []string) (parseResult, error) {
	var result parseResult
	var current domain.Rule
	inRule := false

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, ".PHONY:"):
			result.Phony = append(result.Phony, splitNames(line[len(".PHONY:"):])...)

		case line[0] == '\t':
			if !inRule {
				return parseResult{}, zerr.New("command line before first rule")
			}
			if len(line) > 1 {
				current.Commands = append(current.Commands, line[1:])
			}

		default:
			if inRule {
				result.Rules = append(result.Rules, current)
			}

			colon := strings.IndexByte(line, ':')
			if colon < 0 {
				return parseResult{}, zerr.With(zerr.New("invalid rule line, missing ':'"), "line", line)
			}

			current = domain.Rule{
				Name: line[:colon],
				Deps: splitNames(line[colon+1:]),
			}
			inRule = true
		}
	}

	if inRule {
		result.Rules = append(result.Rules, current)
	}

	return result, nil
}

func splitNames(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
