package hnshape_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	hnshape "github.com/hnshape/hnshape"
	g "github.com/hnshape/hnshape/schema"
	_ "github.com/hnshape/hnshape/source"
)

func TestParseFrom_Object(t *testing.T) {
	ctx := context.Background()

	s := g.Object().
		Field("name", g.StringOf[string]()).Required().
		Field("score", g.IntOf[int]()).Required().
		UnknownStrip().
		MustBuild()

	v, err := hnshape.ParseFrom(ctx, s, hnshape.JSONBytes([]byte(`{"name":"hn","score":42,"extra":true}`)))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v["name"] != "hn" {
		t.Fatalf("unexpected value: %#v", v)
	}
	if sc, ok := v["score"].(int); !ok || sc != 42 {
		t.Fatalf("expected int 42, got: %#v", v["score"])
	}
	if _, ok := v["extra"]; ok {
		t.Fatalf("extra key should be stripped: %#v", v)
	}
}

func TestParseFrom_InvalidJSON(t *testing.T) {
	ctx := context.Background()

	s := g.Object().
		Field("name", g.StringOf[string]()).
		MustBuild()

	_, err := hnshape.ParseFrom(ctx, s, hnshape.JSONBytes([]byte(`{"name":`)))
	if err == nil {
		t.Fatalf("expected parse failure")
	}
	if _, ok := hnshape.AsIssues(err); !ok {
		t.Fatalf("expected Issues, got: %T %v", err, err)
	}
}

func TestParseFrom_MaxBytes(t *testing.T) {
	ctx := context.Background()

	s := g.Array(g.Int())
	big := "[" + strings.Repeat("1,", 1000) + "1]"

	_, err := hnshape.ParseFrom[[]int](ctx, s, hnshape.JSONBytes([]byte(big)), hnshape.ParseOpt{MaxBytes: 16})
	iss, ok := hnshape.AsIssues(err)
	if !ok || iss[0].Code != hnshape.CodeTruncated {
		t.Fatalf("expected truncated, got: %v", err)
	}
}

func TestParseFrom_MaxBytesAllowsSmallDoc(t *testing.T) {
	ctx := context.Background()

	s := g.Array(g.Int())
	v, err := hnshape.ParseFrom[[]int](ctx, s, hnshape.JSONBytes([]byte(`[1,2,3]`)), hnshape.ParseOpt{MaxBytes: 64})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(v) != 3 {
		t.Fatalf("unexpected value: %#v", v)
	}
}

func TestParseFrom_MaxDepth(t *testing.T) {
	ctx := context.Background()

	inner := g.Object().Field("a", g.StringOf[string]()).UnknownStrip().MustBuild()
	s := g.Object().
		Field("o", g.SchemaOf[map[string]any](inner)).
		UnknownStrip().
		MustBuild()

	deep := []byte(`{"o":{"a":{"b":{"c":"x"}}}}`)
	_, err := hnshape.ParseFrom(ctx, s, hnshape.JSONBytes(deep), hnshape.ParseOpt{MaxDepth: 2})
	iss, ok := hnshape.AsIssues(err)
	if !ok || iss[0].Code != hnshape.CodeParseError {
		t.Fatalf("expected parse_error for depth, got: %v", err)
	}
}

func TestParseFrom_NumberFloat64Mode(t *testing.T) {
	ctx := context.Background()

	s := g.Object().
		Field("n", g.SchemaOf[json.Number](g.NumberJSON())).Required().
		UnknownStrip().
		MustBuild()
	doc := []byte(`{"n":1e2}`)

	// default mode preserves the source text
	v, err := hnshape.ParseFrom(ctx, s, hnshape.JSONBytes(doc))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v["n"] != json.Number("1e2") {
		t.Fatalf("expected raw number text, got: %#v", v["n"])
	}

	// float64 mode normalizes through the float representation
	src := hnshape.WithNumberMode(hnshape.JSONBytes(doc), hnshape.NumberFloat64)
	v2, err := hnshape.ParseFrom(ctx, s, src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v2["n"] != json.Number("100") {
		t.Fatalf("expected normalized number, got: %#v", v2["n"])
	}
}

func TestDecode_PlainValue(t *testing.T) {
	ctx := context.Background()

	v, err := hnshape.Decode[string](ctx, g.String(), "hello")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != "hello" {
		t.Fatalf("unexpected value: %q", v)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := hnshape.Issues{
		{Path: "/a", Code: hnshape.CodeRequired},
		{Path: "/b", Code: hnshape.CodeRequired},
		{Path: "/c", Code: hnshape.CodeRequired},
		{Path: "/d", Code: hnshape.CodeRequired},
	}
	msg := iss.Error()
	if !strings.Contains(msg, "total 4") {
		t.Fatalf("expected total count in message: %q", msg)
	}
}
