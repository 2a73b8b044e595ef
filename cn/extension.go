package cn

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type extensionDTO struct {
	Prefix           string              `yaml:"prefix"`
	Groups           []groupDTO          `yaml:"groups"`
	Conflicts        map[string][]string `yaml:"conflicts"`
	PostfixConflicts map[string][]string `yaml:"postfix_conflicts"`
}

type groupDTO struct {
	ID    string    `yaml:"id"`
	Rules []ruleDTO `yaml:"rules"`
}

type ruleDTO struct {
	Prefix     string    `yaml:"prefix"`
	Values     []string  `yaml:"values"`
	Validators []string  `yaml:"validators"`
	Rules      []ruleDTO `yaml:"rules"`
}

// LoadedExtension is an Extension read from YAML. Prefix, when set,
// overrides Config.Prefix.
type LoadedExtension struct {
	Extension
	Prefix string
}

// Apply extends cfg with e.
func (e LoadedExtension) Apply(cfg Config) Config {
	out := cfg.Extend(e.Extension)
	if e.Prefix != "" {
		out.Prefix = e.Prefix
	}
	return out
}

// LoadExtension reads class groups from YAML:
//
//	prefix: tw-
//	groups:
//	  - id: text-shadow
//	    rules:
//	      - prefix: text-shadow
//	        values: ["", none]
//	        validators: [tshirt, arbitrary]
//	conflicts:
//	  text-shadow: [text-shadow-color]
//
// Validators are referred to by name: any, length, number, integer, percent,
// tshirt, arbitrary, arbitrary-length, arbitrary-number, arbitrary-size,
// arbitrary-position, arbitrary-image, arbitrary-shadow.
func LoadExtension(r io.Reader) (LoadedExtension, error) {
	var dto extensionDTO
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return LoadedExtension{}, fmt.Errorf("decode extension: %w", err)
	}

	ext := LoadedExtension{
		Prefix: dto.Prefix,
		Extension: Extension{
			Conflicts:        dto.Conflicts,
			PostfixConflicts: dto.PostfixConflicts,
		},
	}
	for i, g := range dto.Groups {
		if g.ID == "" {
			return LoadedExtension{}, fmt.Errorf("group %d: %w", i, ErrEmptyGroupID)
		}
		rules, err := convertRules(g.Rules)
		if err != nil {
			return LoadedExtension{}, fmt.Errorf("group %q: %w", g.ID, err)
		}
		ext.Groups = append(ext.Groups, Group{ID: g.ID, Rules: rules})
	}
	return ext, nil
}

// LoadExtensionFile reads an extension from a YAML file.
func LoadExtensionFile(path string) (LoadedExtension, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadedExtension{}, err
	}
	defer f.Close()

	ext, err := LoadExtension(f)
	if err != nil {
		return LoadedExtension{}, fmt.Errorf("%s: %w", path, err)
	}
	return ext, nil
}

func convertRules(in []ruleDTO) ([]Rule, error) {
	var out []Rule
	for _, r := range in {
		rule := Rule{Prefix: r.Prefix, Values: r.Values}
		for _, name := range r.Validators {
			fn, ok := validatorsByName[name]
			if !ok {
				return nil, fmt.Errorf("%q: %w", name, ErrUnknownValidator)
			}
			rule.Validators = append(rule.Validators, fn)
		}
		nested, err := convertRules(r.Rules)
		if err != nil {
			return nil, err
		}
		rule.Rules = nested
		out = append(out, rule)
	}
	return out, nil
}
