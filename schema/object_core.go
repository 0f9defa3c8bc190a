package schema

import (
	"context"
	"sort"

	hnshape "github.com/hnshape/hnshape"
	"github.com/hnshape/hnshape/i18n"
)

type objectSchema struct {
	fields        map[string]AnyAdapter
	required      map[string]struct{}
	unknownPolicy hnshape.UnknownPolicy
	sortedKeys    []string
}

var _ hnshape.Schema[map[string]any] = (*objectSchema)(nil)

// collectKnown parses declared fields, accumulating every violation instead of
// stopping at the first.
func (o *objectSchema) collectKnown(ctx context.Context, src map[string]any) (map[string]any, hnshape.Issues) {
	out := make(map[string]any, len(src))
	var iss hnshape.Issues
	for _, k := range o.sortedKeys {
		ad := o.fields[k]
		if val, exists := src[k]; exists {
			parsed, err := ad.parse(ctx, val)
			if err != nil {
				iss = hnshape.AppendIssues(iss, hnshape.PrefixIssues("/"+k, err)...)
				if hnshape.IsFailFast(ctx) {
					return out, iss
				}
				continue
			}
			out[k] = parsed
			continue
		}
		if _, req := o.required[k]; req {
			iss = hnshape.AppendIssues(iss, hnshape.Issue{Path: "/" + k, Code: hnshape.CodeRequired, Message: i18n.T(hnshape.CodeRequired, nil), Hint: "required property missing"})
			if hnshape.IsFailFast(ctx) {
				return out, iss
			}
		}
	}
	return out, iss
}

// collectUnknown processes undeclared keys according to the unknown policy.
func (o *objectSchema) collectUnknown(src map[string]any) hnshape.Issues {
	if o.unknownPolicy == hnshape.UnknownStrip {
		return nil
	}
	var iss hnshape.Issues
	// unknown keys in key-sorted order
	uks := make([]string, 0, len(src))
	for k := range src {
		if _, known := o.fields[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	for _, k := range uks {
		iss = hnshape.AppendIssues(iss, hnshape.Issue{Path: "/" + k, Code: hnshape.CodeUnknownKey, Message: i18n.T(hnshape.CodeUnknownKey, nil)})
	}
	return iss
}

func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil), Hint: "expected object"}}
	}
	out, iss := o.collectKnown(ctx, src)
	if hnshape.IsFailFast(ctx) && len(iss) > 0 {
		return nil, iss
	}
	if issUnknown := o.collectUnknown(src); len(issUnknown) > 0 {
		iss = hnshape.AppendIssues(iss, issUnknown...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(map[string]any); !ok {
		return hnshape.Issues{{Path: "/", Code: hnshape.CodeInvalidType, Message: i18n.T(hnshape.CodeInvalidType, nil), Hint: "expected object"}}
	}
	return nil
}

func (o *objectSchema) RuleCheck(ctx context.Context, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	var iss hnshape.Issues
	// required keys in key-sorted order
	rks := make([]string, 0, len(o.required))
	for k := range o.required {
		rks = append(rks, k)
	}
	sort.Strings(rks)
	for _, k := range rks {
		if _, ok := m[k]; !ok {
			iss = hnshape.AppendIssues(iss, hnshape.Issue{Path: "/" + k, Code: hnshape.CodeRequired, Message: i18n.T(hnshape.CodeRequired, nil), Hint: "required property missing"})
			if hnshape.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (o *objectSchema) Validate(ctx context.Context, v any) error {
	if err := o.TypeCheck(ctx, v); err != nil {
		return err
	}
	return o.RuleCheck(ctx, v)
}

func (o *objectSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	for _, k := range o.sortedKeys {
		ad := o.fields[k]
		if val, ok := v[k]; ok {
			if err := ad.validateValue(ctx, val); err != nil {
				return hnshape.PrefixIssues("/"+k, err)
			}
		} else if _, req := o.required[k]; req {
			return hnshape.Issues{{Path: "/" + k, Code: hnshape.CodeRequired, Message: i18n.T(hnshape.CodeRequired, nil), Hint: "required property missing"}}
		}
	}
	return nil
}
