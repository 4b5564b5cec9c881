package domain

// Rule is a single build rule as produced by the rule-file parser: a target
// name, the ordered names of the rules it depends on, and the ordered shell
// commands that produce it. Empty Deps and empty Commands are both legal.
type Rule struct {
	Name     string
	Deps     []string
	Commands []string
}
