// Package hn exposes Hacker News items as schema-validated typed values.
//
// Every payload read from the API is validated against a variant schema
// before a typed Item is handed to the caller: extra keys are tolerated,
// missing or mistyped fields surface as aggregated hnshape.Issues.
package hn

// ItemKind names one of the five item variants.
type ItemKind string

const (
	KindStory   ItemKind = "story"
	KindJob     ItemKind = "job"
	KindPoll    ItemKind = "poll"
	KindPollOpt ItemKind = "pollopt"
	KindComment ItemKind = "comment"
)

// Item is the decoded result of a union fetch, one of Story, Job, Poll,
// PollOpt, or Comment.
type Item interface {
	ItemID() int
	Kind() ItemKind
}

// Story is a submitted link or text post.
type Story struct {
	By          string `json:"by"`
	ID          int    `json:"id"`
	Time        int64  `json:"time"`
	Dead        bool   `json:"dead,omitempty"`
	Deleted     bool   `json:"deleted,omitempty"`
	Kids        []int  `json:"kids,omitempty"`
	Score       int    `json:"score"`
	Title       string `json:"title"`
	Descendants int    `json:"descendants"`
	Text        string `json:"text,omitempty"`
	URL         string `json:"url,omitempty"`
}

func (s Story) ItemID() int    { return s.ID }
func (s Story) Kind() ItemKind { return KindStory }

// Job is a hiring post. Same text/url optionality as Story, no descendants.
type Job struct {
	By      string `json:"by"`
	ID      int    `json:"id"`
	Time    int64  `json:"time"`
	Dead    bool   `json:"dead,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
	Kids    []int  `json:"kids,omitempty"`
	Score   int    `json:"score"`
	Title   string `json:"title"`
	Text    string `json:"text,omitempty"`
	URL     string `json:"url,omitempty"`
}

func (j Job) ItemID() int    { return j.ID }
func (j Job) Kind() ItemKind { return KindJob }

// Poll is a poll post; Parts references its PollOpt items.
type Poll struct {
	By          string `json:"by"`
	ID          int    `json:"id"`
	Time        int64  `json:"time"`
	Dead        bool   `json:"dead,omitempty"`
	Deleted     bool   `json:"deleted,omitempty"`
	Kids        []int  `json:"kids,omitempty"`
	Score       int    `json:"score"`
	Title       string `json:"title"`
	Descendants int    `json:"descendants"`
	Parts       []int  `json:"parts"`
}

func (p Poll) ItemID() int    { return p.ID }
func (p Poll) Kind() ItemKind { return KindPoll }

// PollOpt is a single poll option. Its schema is deliberately narrow: only
// poll, score, and text are validated, the common item fields are not part
// of the contract. ID is filled in by the client from the requested id, not
// from the payload.
type PollOpt struct {
	ID    int    `json:"-"`
	Poll  int    `json:"poll"`
	Score int    `json:"score"`
	Text  string `json:"text"`
}

func (p PollOpt) ItemID() int    { return p.ID }
func (p PollOpt) Kind() ItemKind { return KindPollOpt }

// Comment is a reply to an item or another comment.
type Comment struct {
	By      string `json:"by"`
	ID      int    `json:"id"`
	Time    int64  `json:"time"`
	Dead    bool   `json:"dead,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
	Kids    []int  `json:"kids,omitempty"`
	Parent  int    `json:"parent"`
	Text    string `json:"text"`
}

func (c Comment) ItemID() int    { return c.ID }
func (c Comment) Kind() ItemKind { return KindComment }

// User is a Hacker News user profile.
type User struct {
	ID        string `json:"id"`
	Created   int64  `json:"created"`
	Karma     int    `json:"karma"`
	About     string `json:"about,omitempty"`
	Submitted []int  `json:"submitted,omitempty"`
}
