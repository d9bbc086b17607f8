package kp

import (
	"reflect"
)

// Attribute is the name of a field in a record type.
type Attribute string

// FieldNames returns the names of the fields of struct type R, in order.
// It returns nil if R is not a struct.
func FieldNames[R any]() []Attribute {
	e := reflect.TypeFor[R]()
	if e.Kind() != reflect.Struct {
		return nil
	}
	return fieldNames(e)
}

// fieldNames takes a reflect.Type of a struct and returns field names in order
func fieldNames(e reflect.Type) []Attribute {
	n := e.NumField()
	names := make([]Attribute, n)
	for i := 0; i < n; i++ {
		names[i] = Attribute(e.Field(i).Name)
	}
	return names
}

// Field looks up the exported field called name in struct type R and returns
// a Path to it.  Promoted fields of embedded structs are found as well; if an
// embedded struct is reached through a nil pointer, the field is absent for
// that record.
func Field[R, F any](name Attribute) (Path[R, F], error) {
	e := reflect.TypeFor[R]()
	if e.Kind() != reflect.Struct {
		return nil, &KindError{reflect.Struct, e.Kind()}
	}
	sf, ok := e.FieldByName(string(name))
	if !ok || !sf.IsExported() {
		return nil, &FieldError{e, name}
	}
	if ft := reflect.TypeFor[F](); sf.Type != ft {
		return nil, &TypeError{name, ft, sf.Type}
	}
	index := sf.Index
	return func(r *R) *F {
		rf, err := reflect.ValueOf(r).Elem().FieldByIndexErr(index)
		if err != nil {
			return nil
		}
		return rf.Addr().Interface().(*F)
	}, nil
}

// MustField is like Field but panics if the field cannot be found.  It is
// meant for package level variables.
func MustField[R, F any](name Attribute) Path[R, F] {
	p, err := Field[R, F](name)
	if err != nil {
		panic(err)
	}
	return p
}
