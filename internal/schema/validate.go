package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cardforge/cardforge/internal/sheet"
)

// Violation is one failed constraint. Path uses dotted keys with [i] indexes,
// e.g. "build.core_skills[3]"; the root object is "$".
type Violation struct {
	Path       string `json:"path"`
	Constraint string `json:"constraint"`
}

func (v Violation) String() string {
	return v.Path + ": " + v.Constraint
}

// ValidationError lists every violation found in a candidate sheet.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "sheet validation failed: " + strings.Join(parts, "; ")
}

// ValidateJSON decodes data and validates it. Numbers are kept as json.Number so
// that 7.5 is reported as a non-integer instead of being truncated.
func ValidateJSON(data []byte) (*sheet.Sheet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var candidate any
	if err := dec.Decode(&candidate); err != nil {
		return nil, &ValidationError{Violations: []Violation{{Path: "$", Constraint: "valid JSON: " + err.Error()}}}
	}
	return Validate(candidate)
}

// Validate checks a decoded candidate (maps, slices, strings and numbers as
// produced by encoding/json) against the sheet schema. It never repairs input.
func Validate(candidate any) (*sheet.Sheet, error) {
	var violations []Violation
	check(Sheet(), candidate, "$", &violations)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	b, err := json.Marshal(candidate)
	if err != nil {
		return nil, fmt.Errorf("re-encode candidate: %w", err)
	}
	var s sheet.Sheet
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode validated sheet: %w", err)
	}
	return &s, nil
}

func check(s *Schema, v any, path string, out *[]Violation) {
	add := func(format string, args ...any) {
		*out = append(*out, Violation{Path: path, Constraint: fmt.Sprintf(format, args...)})
	}

	switch s.Type {
	case "object":
		obj, ok := v.(map[string]any)
		if !ok {
			add("type object")
			return
		}
		extra := make([]string, 0)
		for k := range obj {
			if _, declared := s.Properties[k]; !declared {
				extra = append(extra, k)
			}
		}
		sort.Strings(extra)
		for _, k := range extra {
			*out = append(*out, Violation{Path: join(path, k), Constraint: "additionalProperties false"})
		}
		for _, k := range s.Required {
			child, present := obj[k]
			if !present {
				*out = append(*out, Violation{Path: join(path, k), Constraint: "required"})
				continue
			}
			check(s.Properties[k], child, join(path, k), out)
		}

	case "array":
		arr, ok := v.([]any)
		if !ok {
			add("type array")
			return
		}
		if s.MinItems != nil && len(arr) < *s.MinItems {
			add("minItems %d", *s.MinItems)
		}
		if s.MaxItems != nil && len(arr) > *s.MaxItems {
			add("maxItems %d", *s.MaxItems)
		}
		seen := make(map[string]int, len(arr))
		for i, item := range arr {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			if s.Items != nil {
				check(s.Items, item, itemPath, out)
			}
			if s.UniqueItems {
				if str, ok := item.(string); ok {
					if first, dup := seen[str]; dup {
						*out = append(*out, Violation{Path: itemPath, Constraint: fmt.Sprintf("uniqueItems (duplicate of [%d])", first)})
					} else {
						seen[str] = i
					}
				}
			}
		}

	case "string":
		str, ok := v.(string)
		if !ok {
			add("type string")
			return
		}
		if len(s.Enum) > 0 {
			if !Contains(s.Enum, str) {
				add("enum %s", strings.Join(s.Enum, "|"))
			}
			return
		}
		n := utf8.RuneCountInString(str)
		if s.MinLength != nil && n < *s.MinLength {
			add("minLength %d", *s.MinLength)
		}
		if s.MaxLength != nil && n > *s.MaxLength {
			add("maxLength %d", *s.MaxLength)
		}

	case "integer":
		n, ok := asInt(v)
		if !ok {
			add("type integer")
			return
		}
		if s.Minimum != nil && n < int64(*s.Minimum) {
			add("minimum %d", *s.Minimum)
		}
		if s.Maximum != nil && n > int64(*s.Maximum) {
			add("maximum %d", *s.Maximum)
		}
	}
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		// "8.0" is rejected too: it would not decode into an int field.
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	}
	return 0, false
}

func join(path, key string) string {
	if path == "$" {
		return key
	}
	return path + "." + key
}
