package schema_test

import (
	"context"
	"testing"

	hnshape "github.com/hnshape/hnshape"
	g "github.com/hnshape/hnshape/schema"
)

func TestArray_CollectsAllElementFailures(t *testing.T) {
	ctx := context.Background()

	s := g.Array(g.Int())

	// failures at index 1 and 3, both reported
	_, err := s.Parse(ctx, []any{1, "two", 3, "four"})
	iss, ok := hnshape.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(iss), iss)
	}
	if iss[0].Path != "/1" || iss[1].Path != "/3" {
		t.Fatalf("expected index-prefixed paths /1 and /3, got: %v", iss)
	}
}

func TestArray_HappyPath(t *testing.T) {
	ctx := context.Background()

	v, err := g.Array(g.Int()).Parse(ctx, []any{10, 20, 30})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(v) != 3 || v[0] != 10 || v[2] != 30 {
		t.Fatalf("unexpected value: %#v", v)
	}
}

func TestArray_NotASequence(t *testing.T) {
	ctx := context.Background()

	_, err := g.Array(g.Int()).Parse(ctx, map[string]any{})
	iss, ok := hnshape.AsIssues(err)
	if !ok || iss[0].Code != hnshape.CodeInvalidType {
		t.Fatalf("expected invalid_type, got: %v", err)
	}
}

func TestArray_MinLength(t *testing.T) {
	ctx := context.Background()

	s := g.Array(g.Int()).Min(1)

	if _, err := s.Parse(ctx, []any{1}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := s.Parse(ctx, []any{})
	iss, ok := hnshape.AsIssues(err)
	if !ok || iss[0].Code != hnshape.CodeTooShort {
		t.Fatalf("expected too_short, got: %v", err)
	}
}
