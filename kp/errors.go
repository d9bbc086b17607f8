// errors are the type checks needed by Field, which finds fields by name at
// run time instead of being checked by the compiler.

package kp

import (
	"reflect"
)

// KindError represents an error that occurs when a field is looked up by name
// on a record type that is not a struct.
type KindError struct {
	Expected reflect.Kind
	Found    reflect.Kind
}

func (e *KindError) Error() string {
	return "kp: expected record kind '" + e.Expected.String() + "', found '" + e.Found.String() + "'"
}

// FieldError represents an error that occurs when a record type has no
// exported field with the requested name.
type FieldError struct {
	Record reflect.Type
	Name   Attribute
}

func (e *FieldError) Error() string {
	return "kp: record '" + e.Record.String() + "' has no exported field '" + string(e.Name) + "'"
}

// TypeError represents an error that occurs when a field exists but does not
// have the type the path was asked for.
type TypeError struct {
	Name     Attribute
	Expected reflect.Type
	Found    reflect.Type
}

func (e *TypeError) Error() string {
	return "kp: expected field '" + string(e.Name) + "' of type '" + e.Expected.String() + "', found '" + e.Found.String() + "'"
}
