package schema_test

import (
	"context"
	"testing"

	hnshape "github.com/hnshape/hnshape"
	g "github.com/hnshape/hnshape/schema"
)

func TestExtend_CombinesFieldSets(t *testing.T) {
	ctx := context.Background()

	base := g.Object().
		Field("id", g.IntOf[int]()).Required().
		Field("by", g.StringOf[string]()).Required().
		UnknownStrip()
	overlay := g.Object().
		Field("title", g.StringOf[string]()).Required().
		UnknownStrip()

	s := g.Extend(base, overlay).MustBuild()

	v, err := s.Parse(ctx, map[string]any{"id": 1, "by": "alice", "title": "hi"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v["title"] != "hi" || v["by"] != "alice" {
		t.Fatalf("unexpected value: %#v", v)
	}

	// required-ness carried from both sides
	_, err = s.Parse(ctx, map[string]any{"id": 1})
	iss, ok := hnshape.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected 2 required issues, got: %v", err)
	}
}

func TestExtend_OverlayWinsOnCollision(t *testing.T) {
	ctx := context.Background()

	base := g.Object().
		Field("score", g.StringOf[string]()).Optional().
		UnknownStrip()
	overlay := g.Object().
		Field("score", g.IntOf[int]()).Required().
		UnknownStrip()

	s := g.Extend(base, overlay).MustBuild()

	// overlay's int spec replaced base's string spec
	if _, err := s.Parse(ctx, map[string]any{"score": 10}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := s.Parse(ctx, map[string]any{"score": "10"}); err == nil {
		t.Fatalf("expected invalid_type for base-shaped value")
	}
	// required if required in either
	_, err := s.Parse(ctx, map[string]any{})
	iss, ok := hnshape.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != hnshape.CodeRequired {
		t.Fatalf("expected required, got: %v", err)
	}
}

func TestExtend_RequiredIfRequiredInEither(t *testing.T) {
	ctx := context.Background()

	base := g.Object().
		Field("text", g.StringOf[string]()).Required().
		UnknownStrip()
	overlay := g.Object().
		Field("text", g.StringOf[string]()).Optional().
		UnknownStrip()

	s := g.Extend(base, overlay).MustBuild()

	_, err := s.Parse(ctx, map[string]any{})
	iss, ok := hnshape.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/text" {
		t.Fatalf("expected required at /text, got: %v", err)
	}
}

func TestExtend_DoesNotMutateInputs(t *testing.T) {
	ctx := context.Background()

	base := g.Object().
		Field("id", g.IntOf[int]()).Required().
		UnknownStrip()
	overlay := g.Object().
		Field("title", g.StringOf[string]()).Required().
		UnknownStrip()

	_ = g.Extend(base, overlay)

	// base stays usable on its own, without overlay's fields or requirements
	s := base.MustBuild()
	if _, err := s.Parse(ctx, map[string]any{"id": 1}); err != nil {
		t.Fatalf("base builder was mutated: %v", err)
	}
}
