package gomaskx

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidPatternError reports a masking pattern that failed to compile, or a
// named strategy that does not exist in the catalog. It surfaces at descriptor
// build time, on the first Mask call for the offending type; the type is not
// cached, so later calls fail identically until the metadata changes.
type InvalidPatternError struct {
	// Field is the struct field carrying the pattern; empty for string-level masking.
	Field string
	// Pattern is the offending pattern or strategy name.
	Pattern string
	// Err is the underlying cause.
	Err error
}

func (e *InvalidPatternError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("gomaskx: invalid mask pattern %q on field %s: %v", e.Pattern, e.Field, e.Err)
	}
	return fmt.Sprintf("gomaskx: invalid mask pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// FieldAccessError reports a field whose value could not be read from the
// instance. Descriptor building only admits exported fields, so this should
// not occur under normal operation; when it does, it fails that Mask call
// without poisoning the cache.
type FieldAccessError struct {
	Type  string
	Field string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("gomaskx: cannot read field %s of %s", e.Field, e.Type)
}

func errUnknownMaskedType(name string) error {
	return errors.Errorf("unknown masked type %q", name)
}
