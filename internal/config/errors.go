package config

import (
	"fmt"
	"reflect"
	"strings"
)

// CoercionError reports a raw setting value that cannot be parsed as the
// field's declared type.
type CoercionError struct {
	Field string
	Value string
	Type  string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("config: field %q: cannot parse %q as %s", e.Field, e.Value, e.Type)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// EnumValueError reports a value outside a field's fixed enumerated set. The
// value is normalised before matching, so case alone never triggers it.
type EnumValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *EnumValueError) Error() string {
	return fmt.Sprintf("config: field %q: %q is not one of %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// TypeMismatchError reports a global configuration request whose type differs
// from the instance actually installed.
type TypeMismatchError struct {
	Requested reflect.Type
	Actual    reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("config: requested global configuration of type %v, but %v is installed", e.Requested, e.Actual)
}
