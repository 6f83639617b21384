// Package gomaskx masks sensitive struct fields before they are rendered into
// a loggable string. Masking intent is declared per field with the mask struct
// tag, either as a named strategy from the catalog or as a custom pattern; the
// per-type field table and compiled patterns are built once and cached.
//
// Basic Usage:
//
//	type User struct {
//		Name     string `mask:"name"`
//		Email    string `mask:"email"`
//		Password string `mask:"password"`
//		Age      int
//	}
//
//	out, err := gomaskx.Mask(User{Name: "John Doe", Email: "john.doe@example.com", Password: "secret123", Age: 30})
//	// out == `User{Name=J*****oe, Email=j*******@e******.com, Password=s********, Age=30}`
package gomaskx

import (
	"fmt"
	"reflect"
	"strings"
)

// Masker renders values into masked string form using a descriptor cache.
// The zero value is not usable; create one with NewMasker. A Masker is safe
// for concurrent use from any number of goroutines.
type Masker struct {
	cache *Cache
}

// NewMasker returns a Masker with its own empty descriptor cache.
func NewMasker() *Masker {
	return &Masker{cache: NewCache()}
}

// Mask renders v as "TypeName{field1=value1, field2=value2}" with every
// rule-bearing field masked. Fields iterate in declaration order. A nil value
// or nil pointer renders as "null", as does any nil field value. Values whose
// type is not a struct have no fields to describe and render with their
// default text form, unmasked.
//
// The first call for a type builds and caches its descriptor; an invalid
// custom pattern or unknown strategy name surfaces here as *InvalidPatternError.
func (m *Masker) Mask(v any) (string, error) {
	if v == nil {
		return "null", nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "null", nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Sprint(rv.Interface()), nil
	}

	desc, err := m.cache.Get(rv.Type())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(desc.Name)
	sb.WriteByte('{')
	for i := range desc.Fields {
		f := &desc.Fields[i]
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		text, err := renderField(desc, f, rv.Field(f.index))
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	sb.WriteByte('}')
	return sb.String(), nil
}

// renderField produces the (possibly masked) text form of a single field value.
func renderField(desc *TypeDescriptor, f *FieldDescriptor, fv reflect.Value) (string, error) {
	for fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return "null", nil
		}
		fv = fv.Elem()
	}
	if !fv.CanInterface() {
		return "", &FieldAccessError{Type: desc.Name, Field: f.Name}
	}
	text := fmt.Sprint(fv.Interface())
	if !f.HasRule {
		return text, nil
	}
	return applyPattern(f.pattern, text)
}

// Invalidate removes the cached descriptor for v's type, so the next Mask of
// such a value rebuilds it. v may be a value, a pointer, or a reflect.Type.
// Invalidating a never-cached type is a no-op.
func (m *Masker) Invalidate(v any) {
	if v == nil {
		return
	}
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	m.cache.Invalidate(t)
}

// Clear removes every cached descriptor.
func (m *Masker) Clear() {
	m.cache.Clear()
}

// defaultMasker backs the package-level functions. Callers needing isolated
// cache lifecycles (tests, hot reload) should hold their own Masker.
var defaultMasker = NewMasker()

// Mask renders v with masked fields using the default Masker.
func Mask(v any) (string, error) {
	return defaultMasker.Mask(v)
}

// Invalidate removes the default Masker's cached descriptor for v's type.
func Invalidate(v any) {
	defaultMasker.Invalidate(v)
}

// Clear removes every cached descriptor from the default Masker.
func Clear() {
	defaultMasker.Clear()
}
