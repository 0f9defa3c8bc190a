package schema_test

import (
	"context"
	"strings"
	"testing"

	hnshape "github.com/hnshape/hnshape"
	g "github.com/hnshape/hnshape/schema"
)

func cardSchema() hnshape.Schema[map[string]any] {
	return g.Object().
		Field("type", g.LiteralOf("card")).Required().
		Field("number", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBuild()
}

func bankSchema() hnshape.Schema[map[string]any] {
	return g.Object().
		Field("type", g.LiteralOf("bank")).Required().
		Field("iban", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBuild()
}

func paymentUnion() hnshape.Schema[map[string]any] {
	return g.Object().
		Discriminator("type").
		OneOf(
			g.Variant("card", cardSchema()),
			g.Variant("bank", bankSchema()),
		).
		MustBuild()
}

func TestUnion_Discriminator_HappyPath(t *testing.T) {
	ctx := context.Background()
	u := paymentUnion()

	v, err := u.Parse(ctx, map[string]any{"type": "card", "number": "4111"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v["number"] != "4111" {
		t.Fatalf("unexpected value: %#v", v)
	}

	v2, err := u.Parse(ctx, map[string]any{"type": "bank", "iban": "DE89"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v2["iban"] != "DE89" {
		t.Fatalf("unexpected value: %#v", v2)
	}
}

func TestUnion_Discriminator_Missing(t *testing.T) {
	ctx := context.Background()
	u := paymentUnion()

	_, err := u.Parse(ctx, map[string]any{"number": "4111"})
	iss, ok := hnshape.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != hnshape.CodeDiscriminatorMissing {
		t.Fatalf("expected single discriminator_missing, got: %v", err)
	}
}

func TestUnion_Discriminator_Unknown_IsTerminal(t *testing.T) {
	ctx := context.Background()
	u := paymentUnion()

	// tag mismatch is terminal: the missing "number" is never reported
	_, err := u.Parse(ctx, map[string]any{"type": "wire"})
	iss, ok := hnshape.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected a single terminal issue, got: %v", err)
	}
	if iss[0].Code != hnshape.CodeDiscriminatorUnknown {
		t.Fatalf("expected discriminator_unknown, got: %v", iss)
	}
	if !strings.Contains(iss[0].Hint, "wire") {
		t.Fatalf("hint should name the offending tag: %v", iss[0])
	}
}

func TestUnion_DispatchesToSingleVariant(t *testing.T) {
	ctx := context.Background()
	u := paymentUnion()

	// failures inside the matched variant only, never merged across variants
	_, err := u.Parse(ctx, map[string]any{"type": "card"})
	iss, ok := hnshape.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got: %v", err)
	}
	if iss[0].Path != "/number" || iss[0].Code != hnshape.CodeRequired {
		t.Fatalf("expected required at /number, got: %v", iss)
	}
}

func TestUnion_FirstMatchInDeclarationOrder(t *testing.T) {
	ctx := context.Background()

	first := g.Object().
		Field("type", g.LiteralOf("dup")).Required().
		Field("a", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBuild()
	second := g.Object().
		Field("type", g.LiteralOf("dup")).Required().
		Field("b", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBuild()

	u := g.Object().
		Discriminator("type").
		OneOf(g.Variant("dup", first), g.Variant("dup", second)).
		MustBuild()

	// only the first declared variant is consulted
	if _, err := u.Parse(ctx, map[string]any{"type": "dup", "a": "x"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := u.Parse(ctx, map[string]any{"type": "dup", "b": "x"})
	iss, ok := hnshape.AsIssues(err)
	if !ok || iss[0].Path != "/a" {
		t.Fatalf("expected failure against first variant, got: %v", err)
	}
}
