package gomaskx

import (
	"reflect"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// maskTag is the struct tag key carrying per-field masking metadata.
//
// Supported forms:
//
//	Field string `mask:"email"`                    // named strategy (case-insensitive)
//	Field string `mask:""`                         // named strategy, defaults to ALL
//	Field string `mask:"custom=\\d(?=\\d{2})"`     // custom pattern
//	Field string `mask:"email,custom=\\S"`         // custom takes precedence when non-empty
//
// Fields without the tag are rendered verbatim. Note that backslashes inside
// a struct tag must be doubled, since tag values are quoted strings.
const maskTag = "mask"

// customPrefix marks a custom pattern inside the mask tag.
const customPrefix = "custom="

// FieldDescriptor holds the resolved masking rule for a single struct field.
// It is built once per field and immutable afterwards.
type FieldDescriptor struct {
	// Name is the field name as declared on the struct.
	Name string
	// Type is the named strategy bound to the field; empty when the field
	// uses a custom pattern or carries no rule.
	Type MaskedType
	// Custom is the custom pattern bound to the field, when present.
	Custom string
	// HasRule reports whether the field carries masking metadata.
	// This alone gates masking.
	HasRule bool
	// Maskable reports whether the field's static type belongs to the set of
	// types eligible for masking (strings, booleans, numerics, time.Time, and
	// slices/arrays or pointers thereof). Informational only; it is never
	// consulted when masking.
	Maskable bool

	index   int
	pattern *regexp2.Regexp
}

// TypeDescriptor holds the per-type field table, in declaration order.
// Only the type's own exported fields are included: promoted fields of
// embedded structs are never enumerated, and unexported fields are skipped.
type TypeDescriptor struct {
	// Name is the type's simple name.
	Name string
	// Fields lists the field descriptors in declaration order.
	Fields []FieldDescriptor
}

// buildDescriptor enumerates the struct type's own fields and resolves the
// masking rule for each. Resolution order is custom pattern (when non-empty),
// then named strategy, then none. The build is pure type-level work; it never
// touches instance data.
func buildDescriptor(t reflect.Type) (*TypeDescriptor, error) {
	desc := &TypeDescriptor{
		Name:   t.Name(),
		Fields: make([]FieldDescriptor, 0, t.NumField()),
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fd := FieldDescriptor{
			Name:     f.Name,
			Maskable: maskableType(f.Type),
			index:    i,
		}
		if tag, ok := f.Tag.Lookup(maskTag); ok {
			if err := resolveRule(&fd, tag); err != nil {
				return nil, err
			}
		}
		desc.Fields = append(desc.Fields, fd)
	}
	return desc, nil
}

// resolveRule binds the compiled pattern for a tagged field.
// A non-empty custom pattern always wins over the named strategy; the pattern
// is resolved exactly once here and never re-evaluated.
func resolveRule(fd *FieldDescriptor, tag string) error {
	name := tag
	if idx := strings.Index(tag, customPrefix); idx >= 0 {
		custom := tag[idx+len(customPrefix):]
		name = strings.TrimSuffix(tag[:idx], ",")
		if custom != "" {
			re, err := regexp2.Compile(custom, regexp2.None)
			if err != nil {
				return &InvalidPatternError{Field: fd.Name, Pattern: custom, Err: err}
			}
			// Record the declared strategy for introspection; it is not
			// consulted once a custom pattern is bound.
			if mt, ok := parseMaskedType(name); ok && name != "" {
				fd.Type = mt
			}
			fd.Custom = custom
			fd.HasRule = true
			fd.pattern = re
			return nil
		}
	}
	mt, ok := parseMaskedType(name)
	if !ok {
		return &InvalidPatternError{Field: fd.Name, Pattern: name, Err: errUnknownMaskedType(name)}
	}
	fd.Type = mt
	fd.HasRule = true
	fd.pattern = maskedTypePatterns[mt]
	return nil
}

var timeType = reflect.TypeOf(time.Time{})

// maskableType reports whether a static field type is eligible for masking:
// strings, booleans, numeric kinds, time.Time, and pointers, slices or arrays
// of those.
func maskableType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return maskableType(t.Elem())
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Struct:
		return t == timeType
	}
	return false
}
