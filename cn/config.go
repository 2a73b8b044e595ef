package cn

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyGroupID     = errors.New("class group id must not be empty")
	ErrUnknownValidator = errors.New("unknown validator")
)

// Rule attaches values to a dash-separated class prefix. An empty value
// stands for the bare prefix, so Rule{Prefix: "border", Values: []string{""}}
// matches the class "border".
type Rule struct {
	Prefix     string
	Values     []string
	Validators []Validator

	// Rules are matched relative to Prefix.
	Rules []Rule
}

// Group is a set of mutually exclusive classes setting the same CSS property.
type Group struct {
	ID    string
	Rules []Rule
}

// Config describes how classes are classified.
type Config struct {
	// Prefix is the Tailwind prefix option (e.g. "tw-"). Classes without it
	// are not Tailwind classes and are never treated as conflicting.
	Prefix string

	// Separator between variant modifiers and the base class.
	Separator string

	// Groups are matched in order; earlier groups win when validators overlap.
	Groups []Group

	// Conflicts maps a group to groups it overrides when it appears later.
	Conflicts map[string][]string

	// PostfixConflicts lists extra groups overridden when the class carries a
	// postfix modifier, e.g. text-lg/7 also sets line-height.
	PostfixConflicts map[string][]string
}

// Extension adds groups and conflicts to a Config.
type Extension struct {
	Groups           []Group
	Conflicts        map[string][]string
	PostfixConflicts map[string][]string
}

// Extend returns a copy of c with ext appended. Extension groups are matched
// after the existing ones.
func (c Config) Extend(ext Extension) Config {
	out := c
	out.Groups = append(append([]Group(nil), c.Groups...), ext.Groups...)
	out.Conflicts = mergeConflicts(c.Conflicts, ext.Conflicts)
	out.PostfixConflicts = mergeConflicts(c.PostfixConflicts, ext.PostfixConflicts)
	return out
}

// Validate checks that every group has an id.
func (c Config) Validate() error {
	for i, g := range c.Groups {
		if g.ID == "" {
			return fmt.Errorf("group %d: %w", i, ErrEmptyGroupID)
		}
	}
	return nil
}

func mergeConflicts(base, add map[string][]string) map[string][]string {
	out := make(map[string][]string, len(base)+len(add))
	for k, v := range base {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range add {
		out[k] = append(out[k], v...)
	}
	return out
}

// classNode is one dash-separated part in the class trie.
type classNode struct {
	next       map[string]*classNode
	validators []groupValidator
	groupID    string
}

type groupValidator struct {
	groupID string
	fn      Validator
}

func newClassMap(groups []Group) *classNode {
	root := &classNode{}
	for _, g := range groups {
		for _, r := range g.Rules {
			root.insert(g.ID, r)
		}
	}
	return root
}

func (n *classNode) insert(groupID string, r Rule) {
	node := n
	if r.Prefix != "" {
		node = n.walk(r.Prefix)
	}
	for _, v := range r.Values {
		if v == "" {
			node.groupID = groupID
			continue
		}
		node.walk(v).groupID = groupID
	}
	for _, fn := range r.Validators {
		node.validators = append(node.validators, groupValidator{groupID: groupID, fn: fn})
	}
	for _, sub := range r.Rules {
		node.insert(groupID, sub)
	}
}

func (n *classNode) walk(path string) *classNode {
	node := n
	for _, part := range strings.Split(path, "-") {
		child, ok := node.next[part]
		if !ok {
			if node.next == nil {
				node.next = make(map[string]*classNode)
			}
			child = &classNode{}
			node.next[part] = child
		}
		node = child
	}
	return node
}

func (n *classNode) lookup(parts []string) string {
	if len(parts) == 0 {
		return n.groupID
	}
	if child, ok := n.next[parts[0]]; ok {
		if id := child.lookup(parts[1:]); id != "" {
			return id
		}
	}
	if len(n.validators) == 0 {
		return ""
	}
	rest := strings.Join(parts, "-")
	for _, v := range n.validators {
		if v.fn(rest) {
			return v.groupID
		}
	}
	return ""
}
