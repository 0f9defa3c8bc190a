package hnshape

import (
	"context"
)

// Schema surfaces the SRP-aligned pillars of construction, type checking,
// value validation, and typed validation.
type Schema[T any] interface {
	// Parse transforms an unknown input into T. It returns an error when
	// validation fails. Validation is structural: no type coercion is
	// performed (a numeric string never satisfies a number schema).
	Parse(ctx context.Context, v any) (T, error)

	// TypeCheck verifies structure, types, and presence decisions.
	TypeCheck(ctx context.Context, v any) error

	// RuleCheck runs min/length/literal validations assuming TypeCheck
	// already succeeded.
	RuleCheck(ctx context.Context, v any) error

	// Validate composes TypeCheck followed by RuleCheck.
	Validate(ctx context.Context, v any) error

	// ValidateValue verifies a value already typed as T without any conversion.
	ValidateValue(ctx context.Context, v T) error
}

// Decode is a thin wrapper around Schema.Parse for the forward
// (input -> output) direction.
func Decode[T any](ctx context.Context, s Schema[T], v any) (T, error) {
	return s.Parse(ctx, v)
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s (TypeCheck+RuleCheck).
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.Validate(ctx, v) == nil
}

// ---- Parse-time context options (internal wiring, exported for subpackages) ----

type contextKey int

const _ctxKeyFailFast contextKey = iota

// WithFailFast returns a child context that marks fail-fast parsing behavior.
// This is set by ParseFrom based on ParseOpt and consumed by schema implementations.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
