package schema

import (
	"context"
	"strconv"

	hnshape "github.com/hnshape/hnshape"
	"github.com/hnshape/hnshape/i18n"
)

// ArrayBuilder exposes chaining options for array schemas while implementing
// Schema[[]E].
type ArrayBuilder[E any] interface {
	hnshape.Schema[[]E]
	Min(n int) ArrayBuilder[E]
}

// Array returns an array schema with the given element schema.
func Array[E any](elem hnshape.Schema[E]) ArrayBuilder[E] {
	return &arraySchema[E]{elem: elem, minLen: -1}
}

// ArrayOf adapts Array[E] to AnyAdapter for use in object builders.
// Example: Field("kids", schema.ArrayOf[int](schema.Int()))
func ArrayOf[E any](elem hnshape.Schema[E]) AnyAdapter {
	return anyAdapterFromSchema[[]E](Array[E](elem))
}

// ArrayOfSchema converts a constrained ArrayBuilder[E] into an AnyAdapter.
// Example: Field("parts", schema.ArrayOfSchema[int](schema.Array(schema.Int()).Min(1)))
func ArrayOfSchema[E any](ab ArrayBuilder[E]) AnyAdapter { return anyAdapterFromSchema[[]E](ab) }

type arraySchema[E any] struct {
	elem   hnshape.Schema[E]
	minLen int
}

// Min sets the minimum length.
func (a *arraySchema[E]) Min(n int) ArrayBuilder[E] { a.minLen = n; return a }

func (a *arraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	switch src := v.(type) {
	case []E:
		if err := a.ValidateValue(ctx, src); err != nil {
			return nil, err
		}
		return src, nil
	case []any:
		res := make([]E, 0, len(src))
		var iss hnshape.Issues
		// every element is validated; failures accumulate with index-prefixed paths
		for i := range src {
			ev, err := a.elem.Parse(ctx, src[i])
			if err != nil {
				iss = hnshape.AppendIssues(iss, hnshape.PrefixIssues("/"+strconv.Itoa(i), err)...)
				if hnshape.IsFailFast(ctx) {
					return nil, iss
				}
				continue
			}
			res = append(res, ev)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		if err := a.lengthCheck(len(res)); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil), Hint: "expected array"}}
	}
}

func (a *arraySchema[E]) TypeCheck(ctx context.Context, v any) error {
	switch v.(type) {
	case []E, []any:
		return nil
	default:
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil), Hint: "expected array"}}
	}
}

func (a *arraySchema[E]) RuleCheck(ctx context.Context, v any) error {
	switch t := v.(type) {
	case []E:
		return a.lengthCheck(len(t))
	case []any:
		return a.lengthCheck(len(t))
	default:
		return nil
	}
}

func (a *arraySchema[E]) Validate(ctx context.Context, v any) error {
	if err := a.TypeCheck(ctx, v); err != nil {
		return err
	}
	return a.RuleCheck(ctx, v)
}

func (a *arraySchema[E]) ValidateValue(ctx context.Context, v []E) error {
	if err := a.lengthCheck(len(v)); err != nil {
		return err
	}
	for i := range v {
		if err := a.elem.ValidateValue(ctx, v[i]); err != nil {
			return hnshape.PrefixIssues("/"+strconv.Itoa(i), err)
		}
	}
	return nil
}

func (a *arraySchema[E]) lengthCheck(n int) error {
	if a.minLen >= 0 && n < a.minLen {
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeTooShort, Message: i18n.T(hnshape.CodeTooShort, nil), Hint: "array is shorter than min"}}
	}
	return nil
}
