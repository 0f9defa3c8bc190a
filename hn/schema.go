package hn

import (
	hnshape "github.com/hnshape/hnshape"
	"github.com/hnshape/hnshape/schema"
)

// Schemas are built once at package init and shared read-only across all
// concurrent decodes. Every object schema strips unknown keys: the API is
// free to grow fields without breaking decoding.

// commonItemFields is the fragment shared by every variant except PollOpt.
func commonItemFields() *schema.ObjectBuilder {
	return schema.Object().
		Field("by", schema.StringOf[string]().NonEmpty()).Required().
		Field("id", schema.IntOf[int]().Min(0)).Required().
		Field("time", schema.Int64Of[int64]().Min(0)).Required().
		Field("dead", schema.BoolOf[bool]()).Optional().
		Field("deleted", schema.BoolOf[bool]()).Optional().
		Field("kids", schema.ArrayOf(schema.Int())).Optional().
		UnknownStrip()
}

// topLevelFields is the fragment shared by Story, Job, and Poll.
func topLevelFields() *schema.ObjectBuilder {
	return schema.Object().
		Field("score", schema.IntOf[int]()).Required().
		Field("title", schema.StringOf[string]().NonEmpty()).Required().
		UnknownStrip()
}

func storyFields() *schema.ObjectBuilder {
	own := schema.Object().
		Field("type", schema.LiteralOf("story")).Required().
		Field("descendants", schema.IntOf[int]().Min(0)).Required().
		Field("text", schema.StringOf[string]()).Optional().
		Field("url", schema.StringOf[string]()).Optional().
		UnknownStrip()
	return schema.Extend(schema.Extend(commonItemFields(), topLevelFields()), own)
}

func jobFields() *schema.ObjectBuilder {
	own := schema.Object().
		Field("type", schema.LiteralOf("job")).Required().
		Field("text", schema.StringOf[string]()).Optional().
		Field("url", schema.StringOf[string]()).Optional().
		UnknownStrip()
	return schema.Extend(schema.Extend(commonItemFields(), topLevelFields()), own)
}

func pollFields() *schema.ObjectBuilder {
	own := schema.Object().
		Field("type", schema.LiteralOf("poll")).Required().
		Field("descendants", schema.IntOf[int]().Min(0)).Required().
		Field("parts", schema.ArrayOfSchema(schema.Array(schema.Int()).Min(1))).Required().
		UnknownStrip()
	return schema.Extend(schema.Extend(commonItemFields(), topLevelFields()), own)
}

// pollOptFields stays narrow on purpose: the common item fields are not
// validated for poll options. See DESIGN.md.
func pollOptFields() *schema.ObjectBuilder {
	return schema.Object().
		Field("type", schema.LiteralOf("pollopt")).Required().
		Field("poll", schema.IntOf[int]().Min(0)).Required().
		Field("score", schema.IntOf[int]()).Required().
		Field("text", schema.StringOf[string]()).Required().
		UnknownStrip()
}

func commentFields() *schema.ObjectBuilder {
	own := schema.Object().
		Field("type", schema.LiteralOf("comment")).Required().
		Field("parent", schema.IntOf[int]().Min(0)).Required().
		Field("text", schema.StringOf[string]()).Required().
		UnknownStrip()
	return schema.Extend(commonItemFields(), own)
}

func userFields() *schema.ObjectBuilder {
	return schema.Object().
		Field("id", schema.StringOf[string]().NonEmpty()).Required().
		Field("created", schema.Int64Of[int64]().Min(0)).Required().
		Field("karma", schema.IntOf[int]()).Required().
		Field("about", schema.StringOf[string]()).Optional().
		Field("submitted", schema.ArrayOf(schema.Int())).Optional().
		UnknownStrip()
}

var (
	storySchema   = schema.MustBind[Story](storyFields())
	jobSchema     = schema.MustBind[Job](jobFields())
	pollSchema    = schema.MustBind[Poll](pollFields())
	pollOptSchema = schema.MustBind[PollOpt](pollOptFields())
	commentSchema = schema.MustBind[Comment](commentFields())
	userSchema    = schema.MustBind[User](userFields())

	itemUnion = schema.Object().
			Discriminator("type").
			OneOf(
			schema.Variant("story", storyFields().MustBuild()),
			schema.Variant("job", jobFields().MustBuild()),
			schema.Variant("poll", pollFields().MustBuild()),
			schema.Variant("pollopt", pollOptFields().MustBuild()),
			schema.Variant("comment", commentFields().MustBuild()),
		).MustBuild()

	topIDsSchema  = schema.Array(schema.Int())
	maxItemSchema = schema.Int()
)

// ItemSchema returns the five-variant union dispatched on the "type" field.
// An unknown or missing tag fails terminally with a discriminator issue, no
// field-level checks are attempted.
func ItemSchema() hnshape.Schema[map[string]any] { return itemUnion }

// StorySchema returns the typed Story schema.
func StorySchema() hnshape.Schema[Story] { return storySchema }

// JobSchema returns the typed Job schema.
func JobSchema() hnshape.Schema[Job] { return jobSchema }

// PollSchema returns the typed Poll schema.
func PollSchema() hnshape.Schema[Poll] { return pollSchema }

// PollOptSchema returns the typed PollOpt schema.
func PollOptSchema() hnshape.Schema[PollOpt] { return pollOptSchema }

// CommentSchema returns the typed Comment schema.
func CommentSchema() hnshape.Schema[Comment] { return commentSchema }

// UserSchema returns the typed User schema.
func UserSchema() hnshape.Schema[User] { return userSchema }
