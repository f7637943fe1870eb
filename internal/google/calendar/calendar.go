// Package calendar reads and writes events of one calendar through the
// Calendar v3 REST collection.
package calendar

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/atomicstack/termdeck/internal/google"
)

const (
	noSummary     = "No summary"
	noDescription = "No description"
	noStart       = "No start time"
	noEnd         = "No end time"
)

// LocalLayout is the datetime shape typed into the schedule form.
const LocalLayout = "2006-01-02T15:04:05"

// Event is one calendar entry as shown in the schedule list.
type Event struct {
	ID          string
	Summary     string
	Start       string
	End         string
	Link        string
	Description string
}

// Row renders the list summary: the title plus its time range.
func (e Event) Row() string {
	return fmt.Sprintf("%s\n  %s - %s", e.Summary, e.Start, e.End)
}

// Draft holds the form values sent on create and update.
type Draft struct {
	Summary     string
	Start       string
	End         string
	Description string
}

type eventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

func (t *eventTime) value(fallback string) string {
	if t == nil {
		return fallback
	}
	if t.DateTime != "" {
		return t.DateTime
	}
	if t.Date != "" {
		return t.Date
	}
	return fallback
}

type eventResource struct {
	ID          string     `json:"id,omitempty"`
	Summary     *string    `json:"summary,omitempty"`
	Description *string    `json:"description,omitempty"`
	HTMLLink    string     `json:"htmlLink,omitempty"`
	Start       *eventTime `json:"start,omitempty"`
	End         *eventTime `json:"end,omitempty"`
}

type eventList struct {
	Items []eventResource `json:"items"`
}

type eventBody struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
}

// Client lists today's and tomorrow's events and edits them.
type Client struct {
	api *google.Client
	loc *time.Location
	now func() time.Time
}

// New returns a calendar client. A nil loc means time.Local.
func New(api *google.Client, loc *time.Location) *Client {
	if loc == nil {
		loc = time.Local
	}
	return &Client{api: api, loc: loc, now: time.Now}
}

// SetClock replaces the clock used for the listing window.
func (c *Client) SetClock(now func() time.Time) {
	if now != nil {
		c.now = now
	}
}

// Window returns the listing range: today 00:00:00 through tomorrow 23:59:59
// in the client's zone.
func (c *Client) Window() (time.Time, time.Time) {
	now := c.now().In(c.loc)
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, c.loc)
	end := time.Date(y, m, d+1, 23, 59, 59, 0, c.loc)
	return start, end
}

// List returns the events in Window ordered by start time.
func (c *Client) List(ctx context.Context) ([]Event, error) {
	from, to := c.Window()
	query := url.Values{
		"orderBy":      {"startTime"},
		"singleEvents": {"true"},
		"timeMin":      {from.Format(time.RFC3339)},
		"timeMax":      {to.Format(time.RFC3339)},
	}
	var list eventList
	if err := c.api.List(ctx, query, &list); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]Event, 0, len(list.Items))
	for _, item := range list.Items {
		out = append(out, Event{
			ID:          item.ID,
			Summary:     orDefault(item.Summary, noSummary),
			Description: orDefault(item.Description, noDescription),
			Start:       item.Start.value(noStart),
			End:         item.End.value(noEnd),
			Link:        item.HTMLLink,
		})
	}
	return out, nil
}

// Create inserts a new event.
func (c *Client) Create(ctx context.Context, d Draft) error {
	if err := c.api.Create(ctx, c.body(d)); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update replaces the event with the given id.
func (c *Client) Update(ctx context.Context, id string, d Draft) error {
	if err := c.api.Update(ctx, id, c.body(d)); err != nil {
		return fmt.Errorf("update event %s: %w", id, err)
	}
	return nil
}

// Delete removes the event with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	return nil
}

func (c *Client) body(d Draft) eventBody {
	zone := c.zoneName()
	return eventBody{
		Summary:     d.Summary,
		Description: d.Description,
		Start:       eventTime{DateTime: NormalizeDateTime(d.Start, c.loc), TimeZone: zone},
		End:         eventTime{DateTime: NormalizeDateTime(d.End, c.loc), TimeZone: zone},
	}
}

// zoneName is the IANA name sent alongside datetimes; "Local" is not one.
func (c *Client) zoneName() string {
	if name := c.loc.String(); name != "Local" {
		return name
	}
	return ""
}

// NormalizeDateTime turns a form datetime without an offset into RFC 3339
// in loc. Anything else is passed through unchanged for the server to judge.
func NormalizeDateTime(value string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(LocalLayout, value, loc)
	if err != nil {
		return value
	}
	return t.Format(time.RFC3339)
}

func orDefault(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
