package schema

import (
	"context"
	"encoding/json"
	"strconv"

	hnshape "github.com/hnshape/hnshape"
	"github.com/hnshape/hnshape/i18n"
)

// String returns the minimal string schema implementation.
func String() hnshape.Schema[string] { return stringSchema{} }

// Bool returns the minimal bool schema implementation.
func Bool() hnshape.Schema[bool] { return boolSchema{} }

// NumberJSON returns the minimal json.Number schema implementation.
func NumberJSON() hnshape.Schema[json.Number] { return numberJSONSchema{} }

type stringSchema struct{}

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil)}}
	}
	return s, nil
}

func (stringSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(string); !ok {
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil)}}
	}
	return nil
}

func (stringSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (stringSchema) Validate(ctx context.Context, v any) error {
	if err := (stringSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (stringSchema{}).RuleCheck(ctx, v)
}

func (stringSchema) ValidateValue(ctx context.Context, v string) error { return nil }

type boolSchema struct{}

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil)}}
	}
	return b, nil
}

func (boolSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(bool); !ok {
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil)}}
	}
	return nil
}

func (boolSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (boolSchema) Validate(ctx context.Context, v any) error {
	if err := (boolSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (boolSchema{}).RuleCheck(ctx, v)
}

func (boolSchema) ValidateValue(ctx context.Context, v bool) error { return nil }

// numberJSONSchema accepts JSON numbers (json.Number or float64 on the wire).
// Strings are never coerced.
type numberJSONSchema struct{}

func (numberJSONSchema) Parse(ctx context.Context, v any) (json.Number, error) {
	switch n := v.(type) {
	case json.Number:
		return n, nil
	case float64:
		return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), nil
	default:
		return json.Number(""), hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil)}}
	}
}

func (numberJSONSchema) TypeCheck(ctx context.Context, v any) error {
	switch v.(type) {
	case json.Number, float64:
		return nil
	default:
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil)}}
	}
}

func (numberJSONSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (numberJSONSchema) Validate(ctx context.Context, v any) error {
	if err := (numberJSONSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (numberJSONSchema{}).RuleCheck(ctx, v)
}

func (numberJSONSchema) ValidateValue(ctx context.Context, v json.Number) error { return nil }

// ---------------- StringOf[T] ----------------

// stringAsSchema wraps stringSchema and projects to a domain type T with
// underlying string.
type stringAsSchema[T ~string] struct{}

func (stringAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	s, err := (stringSchema{}).Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return T(s), nil
}

func (stringAsSchema[T]) TypeCheck(ctx context.Context, v any) error {
	return (stringSchema{}).TypeCheck(ctx, v)
}
func (stringAsSchema[T]) RuleCheck(ctx context.Context, v any) error {
	return (stringSchema{}).RuleCheck(ctx, v)
}
func (stringAsSchema[T]) Validate(ctx context.Context, v any) error {
	return (stringSchema{}).Validate(ctx, v)
}
func (stringAsSchema[T]) ValidateValue(ctx context.Context, v T) error {
	return (stringSchema{}).ValidateValue(ctx, string(v))
}

// StringOf returns an AnyAdapter for a string wire schema projected to domain type T.
func StringOf[T ~string]() AnyAdapter {
	return anyAdapterFromSchema[T](stringAsSchema[T]{})
}

// ---------------- BoolOf[T] ----------------

// boolAsSchema wraps boolSchema and projects to a domain type T with
// underlying bool.
type boolAsSchema[T ~bool] struct{}

func (boolAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	b, err := (boolSchema{}).Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return T(b), nil
}

func (boolAsSchema[T]) TypeCheck(ctx context.Context, v any) error {
	return (boolSchema{}).TypeCheck(ctx, v)
}
func (boolAsSchema[T]) RuleCheck(ctx context.Context, v any) error {
	return (boolSchema{}).RuleCheck(ctx, v)
}
func (boolAsSchema[T]) Validate(ctx context.Context, v any) error {
	return (boolSchema{}).Validate(ctx, v)
}
func (boolAsSchema[T]) ValidateValue(ctx context.Context, v T) error {
	return (boolSchema{}).ValidateValue(ctx, bool(v))
}

// BoolOf returns an AnyAdapter for a bool wire schema projected to domain type T.
func BoolOf[T ~bool]() AnyAdapter {
	return anyAdapterFromSchema[T](boolAsSchema[T]{})
}

// ---------------- IntOf[T] ----------------

// intAsSchema wraps numberJSONSchema and projects to a domain type T with
// underlying int. It accepts JSON numbers on the wire and converts with
// integer-only semantics (a fractional number fails).
type intAsSchema[T ~int] struct{}

func (intAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	// Allow direct ints for programmatic input ergonomics.
	switch t := v.(type) {
	case int:
		return T(t), nil
	case int64:
		return T(int(t)), nil
	}
	num, err := (numberJSONSchema{}).Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	i64, perr := num.Int64()
	if perr != nil {
		var zero T
		return zero, hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil), Cause: perr}}
	}
	return T(int(i64)), nil
}

func (intAsSchema[T]) TypeCheck(ctx context.Context, v any) error {
	switch v.(type) {
	case int, int64:
		return nil
	}
	return (numberJSONSchema{}).TypeCheck(ctx, v)
}
func (intAsSchema[T]) RuleCheck(ctx context.Context, v any) error { return nil }
func (intAsSchema[T]) Validate(ctx context.Context, v any) error {
	if err := (intAsSchema[T]{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (intAsSchema[T]{}).RuleCheck(ctx, v)
}
func (intAsSchema[T]) ValidateValue(ctx context.Context, v T) error { return nil }

// IntOf returns an AnyAdapter for a JSON number wire schema projected to
// domain type T(~int). It accepts numbers like 1 or 2 (never strings).
func IntOf[T ~int]() AnyAdapter {
	return anyAdapterFromSchema[T](intAsSchema[T]{})
}

// Int returns the int schema as a Schema for use as an array element.
func Int() hnshape.Schema[int] { return intAsSchema[int]{} }

// ---------------- Int64Of[T] ----------------

// int64AsSchema projects JSON numbers to a domain type T with underlying int64.
type int64AsSchema[T ~int64] struct{}

func (int64AsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	switch t := v.(type) {
	case int:
		return T(int64(t)), nil
	case int64:
		return T(t), nil
	}
	num, err := (numberJSONSchema{}).Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	i64, perr := num.Int64()
	if perr != nil {
		var zero T
		return zero, hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil), Cause: perr}}
	}
	return T(i64), nil
}

func (int64AsSchema[T]) TypeCheck(ctx context.Context, v any) error {
	switch v.(type) {
	case int, int64:
		return nil
	}
	return (numberJSONSchema{}).TypeCheck(ctx, v)
}
func (int64AsSchema[T]) RuleCheck(ctx context.Context, v any) error { return nil }
func (int64AsSchema[T]) Validate(ctx context.Context, v any) error {
	if err := (int64AsSchema[T]{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (int64AsSchema[T]{}).RuleCheck(ctx, v)
}
func (int64AsSchema[T]) ValidateValue(ctx context.Context, v T) error { return nil }

// Int64Of returns an AnyAdapter for a JSON number wire schema projected to
// domain type T(~int64).
func Int64Of[T ~int64]() AnyAdapter {
	return anyAdapterFromSchema[T](int64AsSchema[T]{})
}
