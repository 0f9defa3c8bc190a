package schema

import (
	"sort"

	hnshape "github.com/hnshape/hnshape"
)

// ObjectBuilder accumulates field specs for an object schema. Builders are
// construction-time only; the built schema is immutable and safe for
// concurrent use.
type ObjectBuilder struct {
	fields        map[string]AnyAdapter
	order         []string
	required      map[string]struct{}
	unknownPolicy hnshape.UnknownPolicy
	discriminator string
	variants      []UnionVariant
}

// FieldStep allows field-scoped chaining (Required/Optional) before returning
// to the builder.
type FieldStep struct {
	b    *ObjectBuilder
	name string
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		fields:        map[string]AnyAdapter{},
		required:      map[string]struct{}{},
		unknownPolicy: hnshape.UnknownStrict,
	}
}

// Field registers a field with its adapter.
func (b *ObjectBuilder) Field(name string, ad AnyAdapter) *FieldStep {
	if _, ok := b.fields[name]; !ok {
		b.order = append(b.order, name)
	}
	b.fields[name] = ad
	return &FieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *FieldStep) Required() *ObjectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *FieldStep) Optional() *ObjectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

func (f *FieldStep) Field(name string, ad AnyAdapter) *FieldStep { return f.b.Field(name, ad) }
func (f *FieldStep) Require(names ...string) *ObjectBuilder      { return f.b.Require(names...) }
func (f *FieldStep) UnknownStrict() *ObjectBuilder               { return f.b.UnknownStrict() }
func (f *FieldStep) UnknownStrip() *ObjectBuilder                { return f.b.UnknownStrip() }
func (f *FieldStep) Build() (hnshape.Schema[map[string]any], error) {
	return f.b.Build()
}
func (f *FieldStep) MustBuild() hnshape.Schema[map[string]any] { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.unknownPolicy = hnshape.UnknownStrict
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *ObjectBuilder) UnknownStrip() *ObjectBuilder {
	b.unknownPolicy = hnshape.UnknownStrip
	return b
}

// Discriminator sets the discriminator key for a discriminated union.
func (b *ObjectBuilder) Discriminator(key string) *ObjectBuilder {
	b.discriminator = key
	return b
}

// OneOf registers union variants when a discriminator is set. Declaration
// order is preserved; the first variant whose tag matches wins.
func (b *ObjectBuilder) OneOf(vars ...UnionVariant) *ObjectBuilder {
	for _, v := range vars {
		if v.tag == "" || v.schema == nil {
			continue
		}
		b.variants = append(b.variants, v)
	}
	return b
}

// Build validates the builder and returns a Schema.
func (b *ObjectBuilder) Build() (hnshape.Schema[map[string]any], error) {
	// If discriminator is configured, return a union schema.
	if b.discriminator != "" && len(b.variants) > 0 {
		return &unionSchema{discriminator: b.discriminator, variants: b.variants}, nil
	}
	// cache sorted keys for deterministic order without per-parse sorting
	kfs := make([]string, 0, len(b.fields))
	for k := range b.fields {
		kfs = append(kfs, k)
	}
	sort.Strings(kfs)
	fields := make(map[string]AnyAdapter, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	required := make(map[string]struct{}, len(b.required))
	for k := range b.required {
		required[k] = struct{}{}
	}
	return &objectSchema{fields: fields, required: required, unknownPolicy: b.unknownPolicy, sortedKeys: kfs}, nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() hnshape.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
