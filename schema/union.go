package schema

import (
	"context"
	"strings"

	hnshape "github.com/hnshape/hnshape"
	"github.com/hnshape/hnshape/i18n"
)

// UnionVariant defines a named variant schema for discriminated unions.
type UnionVariant struct {
	tag    string
	schema hnshape.Schema[map[string]any]
}

// Variant constructs a UnionVariant.
func Variant(tag string, s hnshape.Schema[map[string]any]) UnionVariant {
	return UnionVariant{tag: tag, schema: s}
}

// Tag returns the variant's discriminator tag.
func (v UnionVariant) Tag() string { return v.tag }

// unionSchema is a discriminated union over map[string]any objects. Variants
// are scanned in declaration order; dispatch is tag-based only, so field-level
// issues of non-matching variants are never mixed in. A tag failure is
// terminal: no per-variant detail is attempted.
type unionSchema struct {
	discriminator string
	variants      []UnionVariant
}

func (u *unionSchema) resolve(tag string) (hnshape.Schema[map[string]any], bool) {
	for _, v := range u.variants {
		if v.tag == tag {
			return v.schema, true
		}
	}
	return nil, false
}

func (u *unionSchema) acceptedTags() string {
	tags := make([]string, 0, len(u.variants))
	for _, v := range u.variants {
		tags = append(tags, v.tag)
	}
	return strings.Join(tags, ", ")
}

func (u *unionSchema) dispatch(v map[string]any) (hnshape.Schema[map[string]any], hnshape.Issues) {
	dv := v[u.discriminator]
	tag, _ := dv.(string)
	if tag == "" {
		return nil, hnshape.Issues{{Path: "/" + u.discriminator, Code: hnshape.CodeDiscriminatorMissing, Message: i18n.T(hnshape.CodeDiscriminatorMissing, nil), Hint: "expected one of: " + u.acceptedTags()}}
	}
	s, ok := u.resolve(tag)
	if !ok {
		return nil, hnshape.Issues{{Path: "/" + u.discriminator, Code: hnshape.CodeDiscriminatorUnknown, Message: i18n.T(hnshape.CodeDiscriminatorUnknown, nil), Hint: "unknown variant '" + tag + "', expected one of: " + u.acceptedTags()}}
	}
	return s, nil
}

func (u *unionSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil), Hint: "expected object"}}
	}
	s, iss := u.dispatch(m)
	if iss != nil {
		return nil, iss
	}
	return s.Parse(ctx, v)
}

func (u *unionSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(map[string]any); !ok {
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil), Hint: "expected object"}}
	}
	return nil
}

func (u *unionSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (u *unionSchema) Validate(ctx context.Context, v any) error {
	if err := u.TypeCheck(ctx, v); err != nil {
		return err
	}
	return u.RuleCheck(ctx, v)
}

func (u *unionSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	s, iss := u.dispatch(v)
	if iss != nil {
		return iss
	}
	return s.ValidateValue(ctx, v)
}
