package cn

import (
	"slices"
	"strings"
)

const importantModifier = "!"

// parsedClass is a class token split into its parts, e.g.
// "md:hover:!bg-red-500/50" has modifiers [md hover], important set,
// base "bg-red-500/50" and postfix at the index of "/".
type parsedClass struct {
	modifiers []string
	important bool
	base      string
	postfix   int // index of '/' in base, or -1
}

func parseClass(class, separator string) parsedClass {
	var (
		modifiers     []string
		depth         int
		modifierStart int
		postfixAt     = -1
	)
	for i := 0; i < len(class); i++ {
		c := class[i]
		if depth == 0 {
			if strings.HasPrefix(class[i:], separator) {
				modifiers = append(modifiers, class[modifierStart:i])
				modifierStart = i + len(separator)
				i += len(separator) - 1
				continue
			}
			if c == '/' {
				postfixAt = i
				continue
			}
		}
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		}
	}

	base := class[modifierStart:]
	p := parsedClass{modifiers: modifiers, postfix: -1}
	switch {
	case strings.HasPrefix(base, importantModifier):
		p.important = true
		base = base[len(importantModifier):]
		modifierStart += len(importantModifier)
	case strings.HasSuffix(base, importantModifier) && len(base) > 1:
		p.important = true
		base = base[:len(base)-len(importantModifier)]
	}
	p.base = base
	if postfixAt > modifierStart && postfixAt-modifierStart < len(base) {
		p.postfix = postfixAt - modifierStart
	}
	return p
}

// sortModifiers orders modifiers so equivalent variant stacks compare equal.
// Arbitrary variants such as [&>*] depend on position and are left in place;
// only the runs between them are sorted.
func sortModifiers(modifiers []string) []string {
	if len(modifiers) <= 1 {
		return modifiers
	}
	sorted := make([]string, 0, len(modifiers))
	var run []string
	for _, m := range modifiers {
		if strings.HasPrefix(m, "[") {
			slices.Sort(run)
			sorted = append(sorted, run...)
			sorted = append(sorted, m)
			run = run[:0]
			continue
		}
		run = append(run, m)
	}
	slices.Sort(run)
	return append(sorted, run...)
}

// arbitraryPropertyGroup returns the group of an arbitrary property class
// such as [mask-type:luminance].
func arbitraryPropertyGroup(class string) string {
	if len(class) < 3 || class[0] != '[' || class[len(class)-1] != ']' {
		return ""
	}
	inner := class[1 : len(class)-1]
	prop, _, ok := strings.Cut(inner, ":")
	if !ok || prop == "" {
		return ""
	}
	return "arbitrary.." + prop
}
