package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rmake/internal/core/domain"
)

func diamondRules() []domain.Rule {
	return []domain.Rule{
		{Name: "all", Deps: []string{"a", "b"}, Commands: nil},
		{Name: "a", Deps: []string{"base"}, Commands: []string{"make a"}},
		{Name: "b", Deps: []string{"base"}, Commands: []string{"make b"}},
		{Name: "base", Deps: nil, Commands: []string{"make base"}},
	}
}

func TestBuildGraphAssignsIDsInOrder(t *testing.T) {
	g, err := domain.BuildGraph(diamondRules(), []string{"all"})
	require.NoError(t, err)

	assert.Equal(t, domain.NodeID(0), g.IDOf("all"))
	assert.Equal(t, domain.NodeID(1), g.IDOf("a"))
	assert.Equal(t, domain.NodeID(2), g.IDOf("b"))
	assert.Equal(t, domain.NodeID(3), g.IDOf("base"))
	assert.Equal(t, 4, g.Size())
}

func TestBuildGraphAdjacencyIsSymmetric(t *testing.T) {
	g, err := domain.BuildGraph(diamondRules(), []string{"all"})
	require.NoError(t, err)

	base := g.IDOf("base")
	a := g.IDOf("a")
	b := g.IDOf("b")
	all := g.IDOf("all")

	assert.ElementsMatch(t, []domain.NodeID{a, b}, g.ChildrenOf(base))
	assert.ElementsMatch(t, []domain.NodeID{base}, g.ParentsOf(a))
	assert.ElementsMatch(t, []domain.NodeID{base}, g.ParentsOf(b))
	assert.ElementsMatch(t, []domain.NodeID{a, b}, g.ParentsOf(all))
	assert.Empty(t, g.ParentsOf(base))
	assert.Empty(t, g.ChildrenOf(all))
}

func TestBuildGraphPreservesDepOrder(t *testing.T) {
	rules := []domain.Rule{
		{Name: "z", Deps: []string{}, Commands: nil},
		{Name: "y", Deps: []string{}, Commands: nil},
		{Name: "x", Deps: []string{"z", "y"}, Commands: nil},
	}
	g, err := domain.BuildGraph(rules, nil)
	require.NoError(t, err)

	x := g.IDOf("x")
	z := g.IDOf("z")
	y := g.IDOf("y")
	assert.Equal(t, []domain.NodeID{z, y}, g.ParentsOf(x))
}

func TestBuildGraphPhonyMarksOnlyNamedNodes(t *testing.T) {
	g, err := domain.BuildGraph(diamondRules(), []string{"all"})
	require.NoError(t, err)

	assert.True(t, g.IsPhony(g.IDOf("all")))
	assert.False(t, g.IsPhony(g.IDOf("a")))
}

func TestBuildGraphDuplicateRuleName(t *testing.T) {
	rules := []domain.Rule{
		{Name: "dup"},
		{Name: "dup"},
	}
	_, err := domain.BuildGraph(rules, nil)
	require.ErrorIs(t, err, domain.ErrDuplicateRule)
}

func TestBuildGraphUnknownDependency(t *testing.T) {
	rules := []domain.Rule{
		{Name: "a", Deps: []string{"ghost"}},
	}
	_, err := domain.BuildGraph(rules, nil)
	require.ErrorIs(t, err, domain.ErrUnknownDependency)
}

func TestBuildGraphUnknownPhony(t *testing.T) {
	rules := []domain.Rule{
		{Name: "a"},
	}
	_, err := domain.BuildGraph(rules, []string{"ghost"})
	require.ErrorIs(t, err, domain.ErrUnknownPhony)
}

func TestIDOfUnknownNameReturnsNoNode(t *testing.T) {
	g, err := domain.BuildGraph(diamondRules(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.NoNode, g.IDOf("nope"))
}
