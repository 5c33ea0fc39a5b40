package topic

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTaxonomy = errors.New("invalid topic taxonomy")

// ConfigError describes one referential-integrity problem in Tables.
type ConfigError struct {
	Category Category
	Problem  string
}

func (e *ConfigError) Error() string {
	if e.Category == "" {
		return e.Problem
	}
	return fmt.Sprintf("category %q: %s", e.Category, e.Problem)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidTaxonomy
}

// Validate checks that every category in the order owns triggers and a
// response, and that no table refers to a category outside the order. All
// problems are reported together.
func Validate(t Tables) error {
	var errs []error
	add := func(c Category, format string, args ...any) {
		errs = append(errs, &ConfigError{Category: c, Problem: fmt.Sprintf(format, args...)})
	}

	if len(t.Order) == 0 {
		add("", "category order is empty")
	}

	seen := make(map[Category]struct{}, len(t.Order))
	for _, c := range t.Order {
		if c == "" {
			add("", "empty category identifier in order")
			continue
		}
		if _, dup := seen[c]; dup {
			add(c, "listed more than once in order")
			continue
		}
		seen[c] = struct{}{}

		phrases := t.Keywords[c]
		if len(phrases) == 0 {
			add(c, "no trigger phrases")
		}
		for _, p := range phrases {
			if strings.TrimSpace(p) == "" {
				add(c, "blank trigger phrase")
			} else if p != strings.ToLower(p) {
				add(c, "trigger phrase %q is not lowercase", p)
			}
		}
		if strings.TrimSpace(t.Responses[c]) == "" {
			add(c, "no response text")
		}
	}

	for c := range t.Keywords {
		if _, ok := seen[c]; !ok {
			add(c, "has trigger phrases but is missing from order")
		}
	}
	for c := range t.Responses {
		if _, ok := seen[c]; !ok {
			add(c, "has a response but is missing from order")
		}
	}

	for _, term := range t.GenericTerms {
		if strings.TrimSpace(term) == "" || term != strings.ToLower(term) {
			add("", "generic term %q must be non-blank lowercase", term)
		}
	}
	if len(t.Fallbacks) == 0 {
		add("", "no fallback responses")
	}
	for i, f := range t.Fallbacks {
		if strings.TrimSpace(f) == "" {
			add("", "fallback response %d is blank", i)
		}
	}
	if strings.TrimSpace(t.OutOfDomain) == "" {
		add("", "out-of-domain response is blank")
	}

	return errors.Join(errs...)
}
