// Package rules defines the checks that pocheck can run on a catalog.
package rules

import (
	"fmt"

	"github.com/potools/pocheck/internal/checker"
)

// All returns every known rule, in a stable order.
func All() []checker.Rule {
	return []checker.Rule{
		Untranslated{},
		SpellingSource{},
		SpellingTranslation{},
	}
}

// Select returns the default rules plus the rules named in extra. An
// unknown name is an error.
func Select(extra []string) ([]checker.Rule, error) {
	byName := make(map[string]checker.Rule)
	enabled := make(map[string]struct{})
	var selected []checker.Rule
	for _, rule := range All() {
		byName[rule.Name()] = rule
		if rule.IsDefault() {
			enabled[rule.Name()] = struct{}{}
			selected = append(selected, rule)
		}
	}

	for _, name := range extra {
		rule, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown rule: %s", name)
		}
		if _, ok := enabled[name]; ok {
			continue
		}
		enabled[name] = struct{}{}
		selected = append(selected, rule)
	}
	return selected, nil
}
