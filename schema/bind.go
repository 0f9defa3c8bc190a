package schema

import (
	"context"
	"reflect"

	hnshape "github.com/hnshape/hnshape"
)

// Bind builds an object schema and binds it to struct type T. Struct fields
// map to wire keys via hnshape.ResolveStructKey (hnshape tag, then json tag,
// then field name).
func Bind[T any](b *ObjectBuilder) (hnshape.Schema[T], error) {
	s, err := b.Build()
	if err != nil {
		var zero hnshape.Schema[T]
		return zero, err
	}
	os, ok := s.(*objectSchema)
	if !ok {
		var zero hnshape.Schema[T]
		return zero, hnshape.Issues{hnshape.Issue{Path: "/", Code: hnshape.CodeParseError, Message: "unexpected schema type for Bind"}}
	}
	return newTypedObjectSchema[T](os)
}

// MustBind is like Bind but panics on error.
func MustBind[T any](b *ObjectBuilder) hnshape.Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

// typedObjectSchema adapts an objectSchema to a typed struct T using key resolution.
type typedObjectSchema[T any] struct {
	inner      *objectSchema
	t          reflect.Type
	fieldByKey map[string]int // wire key -> struct field index
}

func newTypedObjectSchema[T any](os *objectSchema) (hnshape.Schema[T], error) {
	var zero hnshape.Schema[T]
	var t T
	rt := reflect.TypeOf(t)
	if rt == nil {
		return zero, hnshape.Issues{hnshape.Issue{Path: "/", Code: hnshape.CodeParseError, Message: "Bind[T] requires struct T"}}
	}
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return zero, hnshape.Issues{hnshape.Issue{Path: "/", Code: hnshape.CodeParseError, Message: "Bind[T] requires struct T"}}
	}
	idxByName := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := hnshape.ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByName[name] = i
	}
	fm := make(map[string]int)
	for k := range os.fields {
		if i, ok := idxByName[k]; ok {
			fm[k] = i
		}
	}
	return &typedObjectSchema[T]{inner: os, t: rt, fieldByKey: fm}, nil
}

// Parse maps wire -> map via inner, then into struct fields by mapping.
func (s *typedObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	m, err := s.inner.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	rv := reflect.New(s.t).Elem()
	for key, idx := range s.fieldByKey {
		val, ok := m[key]
		if !ok {
			continue
		}
		fv := rv.Field(idx)
		if !fv.CanSet() {
			continue
		}
		if val == nil {
			switch fv.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
				fv.Set(reflect.Zero(fv.Type()))
			}
			continue
		}
		vv := reflect.ValueOf(val)
		if vv.Type().AssignableTo(fv.Type()) {
			fv.Set(vv)
		} else if vv.Type().ConvertibleTo(fv.Type()) {
			fv.Set(vv.Convert(fv.Type()))
		} else {
			return zero, hnshape.Issues{hnshape.Issue{Path: "/" + key, Code: hnshape.CodeInvalidType, Message: "field type mismatch"}}
		}
	}
	return rv.Interface().(T), nil
}

func (s *typedObjectSchema[T]) TypeCheck(ctx context.Context, v any) error {
	return s.inner.TypeCheck(ctx, v)
}

func (s *typedObjectSchema[T]) RuleCheck(ctx context.Context, v any) error {
	return s.inner.RuleCheck(ctx, v)
}

func (s *typedObjectSchema[T]) Validate(ctx context.Context, v any) error {
	return s.inner.Validate(ctx, v)
}

func (s *typedObjectSchema[T]) ValidateValue(ctx context.Context, v T) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	m := make(map[string]any, len(s.fieldByKey))
	for key, idx := range s.fieldByKey {
		fv := rv.Field(idx)
		if !fv.IsValid() {
			continue
		}
		m[key] = fv.Interface()
	}
	return s.inner.ValidateValue(ctx, m)
}
