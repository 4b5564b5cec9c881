package rulefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rmake/internal/core/domain"
)

func TestParseLinesPhonyAndRules(t *testing.T) {
	lines := []string{
		".PHONY: a b c",
		"d:",
		"\techo d",
		"b: d",
		"\techo b",
		"c: d",
		"\techo c",
		"a: b c",
	}
	result, err := parseLines(lines)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, result.Phony)
	require.Len(t, result.Rules, 4)
	assert.Equal(t, domain.Rule{Name: "d", Deps: nil, Commands: []string{"echo d"}}, result.Rules[0])
	assert.Equal(t, domain.Rule{Name: "b", Deps: []string{"d"}, Commands: []string{"echo b"}}, result.Rules[1])
	assert.Equal(t, domain.Rule{Name: "a", Deps: []string{"b", "c"}, Commands: nil}, result.Rules[3])
}

func TestParseLinesCommandBeforeFirstRuleIsFatal(t *testing.T) {
	_, err := parseLines([]string{"\techo hi"})
	require.Error(t, err)
}

func TestParseLinesMissingColonIsFatal(t *testing.T) {
	_, err := parseLines([]string{"not a rule"})
	require.Error(t, err)
}

func TestParseLinesEmptyDeps(t *testing.T) {
	result, err := parseLines([]string{"a:"})
	require.NoError(t, err)
	require.Len(t, result.Rules, 1)
	assert.Empty(t, result.Rules[0].Deps)
}

func TestParseLinesMultipleCommandsPreserveOrder(t *testing.T) {
	result, err := parseLines([]string{"a:", "\tfirst", "\tsecond", "\tthird"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, result.Rules[0].Commands)
}
