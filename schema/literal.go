package schema

import (
	"context"

	hnshape "github.com/hnshape/hnshape"
	"github.com/hnshape/hnshape/i18n"
)

// Literal returns a schema accepting only the exact string lit. It is
// primarily used for discriminator tags.
func Literal(lit string) hnshape.Schema[string] { return literalSchema{lit: lit} }

// LiteralOf returns an AnyAdapter for a literal-string field.
func LiteralOf(lit string) AnyAdapter { return anyAdapterFromSchema[string](literalSchema{lit: lit}) }

type literalSchema struct{ lit string }

func (l literalSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil), Hint: "expected literal '" + l.lit + "'"}}
	}
	if s != l.lit {
		return "", hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidLiteral, Message: i18n.T(hnshape.CodeInvalidLiteral, nil), Hint: "expected literal '" + l.lit + "', got '" + s + "'"}}
	}
	return s, nil
}

func (l literalSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(string); !ok {
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil), Hint: "expected literal '" + l.lit + "'"}}
	}
	return nil
}

func (l literalSchema) RuleCheck(ctx context.Context, v any) error {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if s != l.lit {
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidLiteral, Message: i18n.T(hnshape.CodeInvalidLiteral, nil), Hint: "expected literal '" + l.lit + "', got '" + s + "'"}}
	}
	return nil
}

func (l literalSchema) Validate(ctx context.Context, v any) error {
	if err := l.TypeCheck(ctx, v); err != nil {
		return err
	}
	return l.RuleCheck(ctx, v)
}

func (l literalSchema) ValidateValue(ctx context.Context, v string) error {
	return l.RuleCheck(ctx, v)
}

// LiteralValue exposes the accepted literal when the schema is a literal.
// The union builder uses it to resolve variant tags.
func LiteralValue(s any) (string, bool) {
	if l, ok := s.(literalSchema); ok {
		return l.lit, true
	}
	return "", false
}
