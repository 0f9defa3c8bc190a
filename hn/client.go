package hn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	hnshape "github.com/hnshape/hnshape"
	_ "github.com/hnshape/hnshape/source"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the Hacker News Firebase API root.
const DefaultBaseURL = "https://hacker-news.firebaseio.com"

// TransportError reports a network or HTTP-level failure. Validation
// failures are reported separately as hnshape.Issues.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("hn: GET %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("hn: GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client fetches and decodes Hacker News items. The zero value is not
// usable; construct with NewClient. A Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = u } }

// WithHTTPClient supplies a custom http.Client.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

// WithTimeout sets the per-request timeout on the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.logger = l } }

// NewClient creates a Client against the live API with a 30s timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) itemURL(id int) string {
	return fmt.Sprintf("%s/v0/item/%d.json", c.baseURL, id)
}

func (c *Client) topStoriesURL() string {
	return c.baseURL + "/v0/topstories.json"
}

func (c *Client) maxItemURL() string {
	return c.baseURL + "/v0/maxitem.json"
}

func (c *Client) userURL(name string) string {
	return fmt.Sprintf("%s/v0/user/%s.json", c.baseURL, url.PathEscape(name))
}

// getJSON performs a GET and returns the raw body. Non-2xx statuses and
// transport failures come back as *TransportError.
func (c *Client) getJSON(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{URL: u, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	if c.logger != nil {
		c.logger.DebugContext(ctx, "fetched", slog.String("url", u), slog.Int("bytes", len(body)))
	}
	return body, nil
}

// syntaxTransportError classifies a JSON syntax failure as *TransportError.
// Schema violations keep their Issues form; only an unparseable body counts
// as an infrastructure failure. Syntax issues carry an empty path, issues
// raised during validation always carry at least "/".
func syntaxTransportError(u string, err error) error {
	iss, ok := hnshape.AsIssues(err)
	if !ok {
		return nil
	}
	if len(iss) == 1 && iss[0].Code == hnshape.CodeParseError && iss[0].Path == "" {
		return &TransportError{URL: u, Err: iss}
	}
	return nil
}

// DecodeItem validates v against the five-variant union and returns the
// matching typed Item. v is a raw decoded JSON value, typically a
// map[string]any.
func DecodeItem(ctx context.Context, v any) (Item, error) {
	m, err := itemUnion.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return itemFromMap(ctx, m)
}

// itemFromMap maps a union-validated object into its typed variant. The tag
// was established by union dispatch, so the switch is exhaustive.
func itemFromMap(ctx context.Context, m map[string]any) (Item, error) {
	tag, _ := m["type"].(string)
	switch ItemKind(tag) {
	case KindStory:
		return storySchema.Parse(ctx, m)
	case KindJob:
		return jobSchema.Parse(ctx, m)
	case KindPoll:
		return pollSchema.Parse(ctx, m)
	case KindPollOpt:
		return pollOptSchema.Parse(ctx, m)
	case KindComment:
		return commentSchema.Parse(ctx, m)
	}
	return nil, hnshape.Issues{{Path: "/type", Code: hnshape.CodeDiscriminatorUnknown, Message: fmt.Sprintf("unknown variant '%s'", tag)}}
}

// Item fetches one item by ID and decodes it against the union schema.
// The error is *TransportError for network failures and hnshape.Issues for
// payloads that do not match any variant shape.
func (c *Client) Item(ctx context.Context, id int) (Item, error) {
	u := c.itemURL(id)
	raw, err := c.getJSON(ctx, u)
	if err != nil {
		return nil, err
	}
	m, err := hnshape.ParseFrom(ctx, itemUnion, hnshape.JSONBytes(raw))
	if err != nil {
		if terr := syntaxTransportError(u, err); terr != nil {
			return nil, terr
		}
		return nil, fmt.Errorf("hn: decode item %d: %w", id, err)
	}
	it, err := itemFromMap(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("hn: decode item %d: %w", id, err)
	}
	if po, ok := it.(PollOpt); ok {
		po.ID = id
		return po, nil
	}
	return it, nil
}

// ItemOfKind fetches an item with a caller-supplied variant schema, for when
// the expected kind is already known. The decoded value is narrower and a
// wrong assumption fails with the variant's own issues instead of a union
// dispatch error.
func ItemOfKind[T any](ctx context.Context, c *Client, s hnshape.Schema[T], id int) (T, error) {
	var zero T
	u := c.itemURL(id)
	raw, err := c.getJSON(ctx, u)
	if err != nil {
		return zero, err
	}
	v, err := hnshape.ParseFrom(ctx, s, hnshape.JSONBytes(raw))
	if err != nil {
		if terr := syntaxTransportError(u, err); terr != nil {
			return zero, terr
		}
		return zero, fmt.Errorf("hn: decode item %d: %w", id, err)
	}
	return v, nil
}

// TopItems fetches the ranked top-story ID list, takes the first n IDs
// (clamped to the list length), and fetches each item concurrently. Rank
// order is preserved in the result. The call is all or nothing: any single
// fetch or decode failure fails the whole batch, and the first failure
// cancels outstanding sibling requests.
func (c *Client) TopItems(ctx context.Context, n int) ([]Item, error) {
	u := c.topStoriesURL()
	raw, err := c.getJSON(ctx, u)
	if err != nil {
		return nil, err
	}
	ids, err := hnshape.ParseFrom[[]int](ctx, topIDsSchema, hnshape.JSONBytes(raw))
	if err != nil {
		if terr := syntaxTransportError(u, err); terr != nil {
			return nil, terr
		}
		return nil, fmt.Errorf("hn: decode top ids: %w", err)
	}
	if n < 0 {
		n = 0
	}
	if n > len(ids) {
		n = len(ids)
	}
	ids = ids[:n]

	items := make([]Item, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			it, err := c.Item(gctx, id)
			if err != nil {
				return err
			}
			items[i] = it
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// MaxItem returns the current largest item ID.
func (c *Client) MaxItem(ctx context.Context) (int, error) {
	u := c.maxItemURL()
	raw, err := c.getJSON(ctx, u)
	if err != nil {
		return 0, err
	}
	id, err := hnshape.ParseFrom(ctx, maxItemSchema, hnshape.JSONBytes(raw))
	if err != nil {
		if terr := syntaxTransportError(u, err); terr != nil {
			return 0, terr
		}
		return 0, fmt.Errorf("hn: decode max item: %w", err)
	}
	return id, nil
}

// User fetches a user profile by name.
func (c *Client) User(ctx context.Context, name string) (User, error) {
	uu := c.userURL(name)
	raw, err := c.getJSON(ctx, uu)
	if err != nil {
		return User{}, err
	}
	u, err := hnshape.ParseFrom(ctx, userSchema, hnshape.JSONBytes(raw))
	if err != nil {
		if terr := syntaxTransportError(uu, err); terr != nil {
			return User{}, terr
		}
		return User{}, fmt.Errorf("hn: decode user %s: %w", name, err)
	}
	return u, nil
}
