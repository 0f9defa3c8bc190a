package hn_test

import (
	"context"
	"testing"

	hnshape "github.com/hnshape/hnshape"
	"github.com/hnshape/hnshape/hn"
)

func validStory() map[string]any {
	return map[string]any{
		"type":        "story",
		"by":          "alice",
		"id":          8863,
		"time":        1175714200,
		"score":       111,
		"title":       "My YC app",
		"descendants": 71,
		"url":         "http://www.getdropbox.com/u/2/screencast.html",
		"kids":        []any{8952, 9224},
	}
}

func validJob() map[string]any {
	return map[string]any{
		"type":  "job",
		"by":    "justin",
		"id":    192327,
		"time":  1210981217,
		"score": 6,
		"title": "Justin.tv is looking for a VP of Engineering",
		"text":  "Justin.tv is the biggest live video site online.",
	}
}

func validPoll() map[string]any {
	return map[string]any{
		"type":        "poll",
		"by":          "pg",
		"id":          126809,
		"time":        1204403652,
		"score":       46,
		"title":       "Poll: What would happen if News.YC had explicit support for polls?",
		"descendants": 54,
		"parts":       []any{126810, 126811, 126812},
	}
}

func validPollOpt() map[string]any {
	return map[string]any{
		"type":  "pollopt",
		"poll":  126809,
		"score": 27,
		"text":  "Switch to the lamer name yCombinator News.",
	}
}

func validComment() map[string]any {
	return map[string]any{
		"type":   "comment",
		"by":     "norvig",
		"id":     2921983,
		"time":   1314211127,
		"parent": 2921506,
		"text":   "Aw shucks, guys ...",
	}
}

func TestDecodeItem_RoundTripAllVariants(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		in   map[string]any
		kind hn.ItemKind
	}{
		{validStory(), hn.KindStory},
		{validJob(), hn.KindJob},
		{validPoll(), hn.KindPoll},
		{validPollOpt(), hn.KindPollOpt},
		{validComment(), hn.KindComment},
	}
	for _, tc := range cases {
		it, err := hn.DecodeItem(ctx, tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tc.kind, err)
		}
		if it.Kind() != tc.kind {
			t.Fatalf("routed to wrong variant: want %s, got %s", tc.kind, it.Kind())
		}
	}
}

func TestDecodeItem_TypedFields(t *testing.T) {
	ctx := context.Background()

	it, err := hn.DecodeItem(ctx, validStory())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	st, ok := it.(hn.Story)
	if !ok {
		t.Fatalf("expected Story, got %T", it)
	}
	if st.ID != 8863 || st.By != "alice" || st.Score != 111 || st.Descendants != 71 {
		t.Fatalf("unexpected story: %#v", st)
	}
	if len(st.Kids) != 2 || st.Kids[0] != 8952 {
		t.Fatalf("unexpected kids: %#v", st.Kids)
	}
}

func TestDecodeItem_AggregatesAllViolations(t *testing.T) {
	ctx := context.Background()

	// missing by and title, descendants mistyped: exactly three issues
	in := validStory()
	delete(in, "by")
	delete(in, "title")
	in["descendants"] = "many"

	_, err := hn.DecodeItem(ctx, in)
	iss, ok := hnshape.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if len(iss) != 3 {
		t.Fatalf("expected exactly 3 issues, got %d: %v", len(iss), iss)
	}
	paths := map[string]bool{}
	for _, it := range iss {
		paths[it.Path] = true
	}
	if !paths["/by"] || !paths["/title"] || !paths["/descendants"] {
		t.Fatalf("unexpected issue paths: %v", iss)
	}
}

func TestDecodeItem_OptionalFieldTolerance(t *testing.T) {
	ctx := context.Background()

	in := validStory()
	delete(in, "url")
	delete(in, "kids")
	// text, dead, deleted never present in the fixture

	it, err := hn.DecodeItem(ctx, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	st := it.(hn.Story)
	if st.URL != "" || st.Text != "" || st.Kids != nil {
		t.Fatalf("absent optionals should stay zero: %#v", st)
	}
}

func TestDecodeItem_UnknownTagIsTerminal(t *testing.T) {
	ctx := context.Background()

	in := validStory()
	in["type"] = "unknown"
	delete(in, "title") // would be a second issue if field checks ran

	_, err := hn.DecodeItem(ctx, in)
	iss, ok := hnshape.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected single terminal issue, got: %v", err)
	}
	if iss[0].Code != hnshape.CodeDiscriminatorUnknown {
		t.Fatalf("expected discriminator_unknown, got: %v", iss)
	}
}

func TestDecodeItem_ExtraKeysTolerated(t *testing.T) {
	ctx := context.Background()

	in := validComment()
	in["rank"] = 3
	in["vote_dir"] = 1

	if _, err := hn.DecodeItem(ctx, in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestDecodeItem_PollOptStaysNarrow(t *testing.T) {
	ctx := context.Background()

	// no by/id/time: the pollopt contract does not require the common fields
	it, err := hn.DecodeItem(ctx, validPollOpt())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	po, ok := it.(hn.PollOpt)
	if !ok {
		t.Fatalf("expected PollOpt, got %T", it)
	}
	if po.Poll != 126809 || po.Score != 27 {
		t.Fatalf("unexpected pollopt: %#v", po)
	}
}

func TestDecodeItem_PollRequiresNonEmptyParts(t *testing.T) {
	ctx := context.Background()

	in := validPoll()
	in["parts"] = []any{}

	_, err := hn.DecodeItem(ctx, in)
	iss, ok := hnshape.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/parts" || iss[0].Code != hnshape.CodeTooShort {
		t.Fatalf("expected too_short at /parts, got: %v", err)
	}
}

func TestDecodeItem_EmptyUsernameRejected(t *testing.T) {
	ctx := context.Background()

	in := validComment()
	in["by"] = ""

	_, err := hn.DecodeItem(ctx, in)
	iss, ok := hnshape.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/by" {
		t.Fatalf("expected issue at /by, got: %v", err)
	}
}

func TestUserSchema(t *testing.T) {
	ctx := context.Background()

	u, err := hn.UserSchema().Parse(ctx, map[string]any{
		"id":        "jl",
		"created":   1173923446,
		"karma":     2937,
		"submitted": []any{8265435, 8168423},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.ID != "jl" || u.Karma != 2937 || len(u.Submitted) != 2 {
		t.Fatalf("unexpected user: %#v", u)
	}
}
