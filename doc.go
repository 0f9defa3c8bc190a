package hnshape

// Package hnshape validates untrusted JSON against composable schema
// descriptors and decodes it into typed values.
//
// - Type-safe validation based on Schema[T] (Parse/Validate/ValidateValue)
// - A stable error model via Issues (JSON Pointer, code, message)
// - Token-stream input via Source with depth/size enforcement
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the schema DSL under schema/, input sources under source/, and the
//   Hacker News client under hn/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := buildSchema()
//	v, err := hnshape.ParseFrom(ctx, s, hnshape.JSONBytes(data))
