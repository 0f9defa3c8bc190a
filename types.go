package hnshape

// UnknownPolicy controls how unknown object keys are handled.
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                       // Drop unknown keys.
)

// NumberMode dictates how numbers are interpreted.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default).
	NumberFloat64                      // Fast mode (with potential precision loss).
)

// ParseOpt bundles parsing options.
type ParseOpt struct {
	MaxDepth int
	MaxBytes int64
	FailFast bool
}
