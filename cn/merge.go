package cn

import (
	"log/slog"
	"strings"
	"sync"
)

// Merger resolves conflicting utility classes. It is immutable after New and
// safe for concurrent use.
type Merger struct {
	prefix           string
	separator        string
	classMap         *classNode
	conflicts        map[string][]string
	postfixConflicts map[string][]string
	logger           *slog.Logger
}

// MergerOption configures a Merger.
type MergerOption func(*Merger)

// WithLogger logs every dropped class at debug level.
func WithLogger(logger *slog.Logger) MergerOption {
	return func(m *Merger) { m.logger = logger }
}

// New builds a Merger from cfg. An empty separator means ":".
func New(cfg Config, opts ...MergerOption) *Merger {
	m := &Merger{
		prefix:           cfg.Prefix,
		separator:        cfg.Separator,
		classMap:         newClassMap(cfg.Groups),
		conflicts:        cfg.Conflicts,
		postfixConflicts: cfg.PostfixConflicts,
	}
	if m.separator == "" {
		m.separator = ":"
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMerger = sync.OnceValue(func() *Merger {
	return New(DefaultConfig())
})

// Default returns the shared Merger built from DefaultConfig.
func Default() *Merger { return defaultMerger() }

// Merge joins class lists and removes classes overridden by later ones.
func Merge(classLists ...string) string {
	return Default().Merge(classLists...)
}

// Dropped is a class removed by a later class.
type Dropped struct {
	Class        string
	OverriddenBy string
}

// Result is the outcome of a merge with the classes it removed.
type Result struct {
	Classes []string
	Dropped []Dropped
}

// String returns the merged class string.
func (r Result) String() string { return strings.Join(r.Classes, " ") }

// Merge joins class lists and removes classes overridden by later ones.
func (m *Merger) Merge(classLists ...string) string {
	return m.Explain(classLists...).String()
}

// Explain merges like Merge and reports which class overrode each dropped one.
func (m *Merger) Explain(classLists ...string) Result {
	var tokens []string
	for _, list := range classLists {
		tokens = append(tokens, strings.Fields(list)...)
	}
	if len(tokens) == 0 {
		return Result{}
	}

	// claimed maps a class id (modifiers + group) or a raw token to the index
	// of the later token that owns it.
	claimed := make(map[string]int, len(tokens))
	keep := make([]bool, len(tokens))
	var dropped []Dropped

	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		ids := m.classIDs(token)
		if owner, ok := claimed[ids[0]]; ok {
			dropped = append(dropped, Dropped{Class: token, OverriddenBy: tokens[owner]})
			if m.logger != nil {
				m.logger.Debug("class dropped", "class", token, "overridden_by", tokens[owner])
			}
			continue
		}
		keep[i] = true
		for _, id := range ids {
			if _, ok := claimed[id]; !ok {
				claimed[id] = i
			}
		}
	}

	classes := make([]string, 0, len(tokens)-len(dropped))
	for i, token := range tokens {
		if keep[i] {
			classes = append(classes, token)
		}
	}
	// dropped was collected back to front
	for l, r := 0, len(dropped)-1; l < r; l, r = l+1, r-1 {
		dropped[l], dropped[r] = dropped[r], dropped[l]
	}
	return Result{Classes: classes, Dropped: dropped}
}

// classIDs returns the id a token claims followed by the ids of the groups it
// overrides. Tokens outside any group claim only themselves.
func (m *Merger) classIDs(token string) []string {
	p := parseClass(token, m.separator)

	group, hasPostfix := "", p.postfix >= 0
	if hasPostfix {
		group = m.groupID(p.base[:p.postfix])
	}
	if group == "" {
		group = m.groupID(p.base)
		hasPostfix = false
	}
	if group == "" {
		return []string{"\x00" + token}
	}

	modifierID := strings.Join(sortModifiers(p.modifiers), ":")
	if p.important {
		modifierID += importantModifier
	}

	ids := []string{modifierID + "|" + group}
	for _, c := range m.conflicts[group] {
		ids = append(ids, modifierID+"|"+c)
	}
	if hasPostfix {
		for _, c := range m.postfixConflicts[group] {
			ids = append(ids, modifierID+"|"+c)
		}
	}
	return ids
}

func (m *Merger) groupID(class string) string {
	if strings.HasPrefix(class, "[") {
		return arbitraryPropertyGroup(class)
	}
	if m.prefix != "" {
		switch {
		case strings.HasPrefix(class, m.prefix):
			class = class[len(m.prefix):]
		case strings.HasPrefix(class, "-"+m.prefix):
			class = "-" + class[len(m.prefix)+1:]
		default:
			return ""
		}
	}
	if class == "" {
		return ""
	}
	parts := strings.Split(class, "-")
	if parts[0] == "" && len(parts) > 1 {
		parts = parts[1:]
	}
	return m.classMap.lookup(parts)
}
