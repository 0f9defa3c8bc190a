// Package schema is the builder DSL for hnshape schemas: primitives,
// literals, objects, arrays, structural merge, and discriminated unions.
package schema
