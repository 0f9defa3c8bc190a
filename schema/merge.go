package schema

// Extend composes two object builders into a new one: field-set composition
// at construction time, not inheritance. The result is a flat field table.
//
// Rules on key collision: the overlay field spec wins (the variant-specific
// field is more specific than the shared fragment); a field is required if it
// is required in either builder. The unknown policy is taken from overlay.
//
// Neither input builder is mutated, so shared fragments can be folded into
// several variants.
func Extend(base, overlay *ObjectBuilder) *ObjectBuilder {
	out := Object()
	out.unknownPolicy = overlay.unknownPolicy
	for _, k := range base.order {
		out.Field(k, base.fields[k])
	}
	for _, k := range overlay.order {
		out.Field(k, overlay.fields[k])
	}
	for k := range base.required {
		out.required[k] = struct{}{}
	}
	for k := range overlay.required {
		out.required[k] = struct{}{}
	}
	return out
}
