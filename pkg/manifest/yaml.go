// Package manifest builds the Jumpstarter custom resource document and
// serializes it to YAML. The serializer is deliberately minimal: it only
// covers the restricted value model the manifest needs (scalars, ordered
// maps and lists) and makes no attempt at full YAML compliance.
package manifest

import (
	"fmt"
	"strings"
)

// Value is a manifest value: a scalar (string, bool, nil or anything with a
// default text form), a Map or a List.
type Value any

// Entry is a single key of a Map.
type Entry struct {
	Key   string
	Value Value
}

// Map is an ordered map with string keys. Keys are emitted in slice order.
type Map []Entry

// List is a sequence of values.
type List []Value

// Encode serializes v at the given indentation level. Two spaces per level.
// Map keys render as "key:" followed by a nested block when the value is a
// Map or List, and as "key: value" otherwise. List elements render with a
// "- " prefix for scalars and a bare "-" followed by a nested block for
// composites.
func Encode(v Value, indent int) string {
	prefix := strings.Repeat("  ", indent)
	var lines []string

	switch value := v.(type) {
	case Map:
		for _, entry := range value {
			switch entry.Value.(type) {
			case Map, List:
				lines = append(lines, prefix+entry.Key+":")
				lines = append(lines, Encode(entry.Value, indent+1))
			default:
				lines = append(lines, fmt.Sprintf("%s%s: %s", prefix, entry.Key, scalar(entry.Value)))
			}
		}
	case List:
		for _, item := range value {
			switch item.(type) {
			case Map, List:
				lines = append(lines, prefix+"-")
				lines = append(lines, Encode(item, indent+1))
			default:
				lines = append(lines, prefix+"- "+scalar(item))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// scalar formats a scalar value for YAML output. Strings containing ':' or
// '#' or starting with '-' are wrapped in double quotes verbatim; embedded
// quotes are not escaped, callers must avoid such inputs.
func scalar(v Value) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case bool:
		if value {
			return "true"
		}
		return "false"
	case string:
		if strings.ContainsAny(value, ":#") || strings.HasPrefix(value, "-") {
			return `"` + value + `"`
		}
		return value
	default:
		return fmt.Sprint(value)
	}
}
