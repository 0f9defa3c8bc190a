package schema

import (
	"context"
	"encoding/json"
	"strconv"

	hnshape "github.com/hnshape/hnshape"
	"github.com/hnshape/hnshape/i18n"
)

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper. It keeps the
// original schema to support introspection (for example, literal tags).
type AnyAdapter struct {
	parse         func(context.Context, any) (any, error)
	validateValue func(context.Context, any) error
	orig          any
}

// anyAdapterFromSchema wraps a strongly typed Schema[T] as AnyAdapter for Field builders.
func anyAdapterFromSchema[T any](s hnshape.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		validateValue: func(ctx context.Context, v any) error {
			tv, ok := v.(T)
			if !ok {
				return hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: "invalid field type"}}
			}
			return s.ValidateValue(ctx, tv)
		},
		orig: s,
	}
}

// SchemaOf converts an arbitrary Schema[T] into an AnyAdapter helper.
func SchemaOf[T any](s hnshape.Schema[T]) AnyAdapter { return anyAdapterFromSchema[T](s) }

// Orig returns the original underlying Schema[T] used to create this adapter.
func (ad AnyAdapter) Orig() any { return ad.orig }

// Nullable wraps an AnyAdapter to accept nulls (JSON null) for both parse and
// validate. When the input value is nil, parsing succeeds and returns nil.
func (ad AnyAdapter) Nullable() AnyAdapter {
	prevParse := ad.parse
	prevValidate := ad.validateValue
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return prevParse(ctx, v)
	}
	out.validateValue = func(ctx context.Context, v any) error {
		if v == nil {
			return nil
		}
		return prevValidate(ctx, v)
	}
	return out
}

// Min sets a numeric minimum (inclusive) constraint at runtime.
// Non-numeric values are ignored by this guard (type errors are handled elsewhere).
func (ad AnyAdapter) Min(n float64) AnyAdapter {
	prevParse := ad.parse
	prevValidate := ad.validateValue
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		val, err := prevParse(ctx, v)
		if err != nil {
			return nil, err
		}
		if err := minCheck(val, n); err != nil {
			return nil, err
		}
		return val, nil
	}
	out.validateValue = func(ctx context.Context, v any) error {
		if err := prevValidate(ctx, v); err != nil {
			return err
		}
		return minCheck(v, n)
	}
	return out
}

// NonEmpty rejects empty strings with too_short.
func (ad AnyAdapter) NonEmpty() AnyAdapter {
	prevParse := ad.parse
	prevValidate := ad.validateValue
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		val, err := prevParse(ctx, v)
		if err != nil {
			return nil, err
		}
		if err := nonEmptyCheck(val); err != nil {
			return nil, err
		}
		return val, nil
	}
	out.validateValue = func(ctx context.Context, v any) error {
		if err := prevValidate(ctx, v); err != nil {
			return err
		}
		return nonEmptyCheck(v)
	}
	return out
}

// ---- helpers ----

func minCheck(v any, min float64) error {
	if v == nil {
		return nil
	}
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		pf, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return nil
		}
		f = pf
	default:
		return nil
	}
	if f < min {
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeTooSmall, Message: i18n.T(hnshape.CodeTooSmall, nil)}}
	}
	return nil
}

func nonEmptyCheck(v any) error {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if s == "" {
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeTooShort, Message: i18n.T(hnshape.CodeTooShort, nil), Hint: "string must not be empty"}}
	}
	return nil
}
