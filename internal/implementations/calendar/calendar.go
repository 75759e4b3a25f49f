package calendar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav/caldav"
	"github.com/golang-module/carbon/v2"
)

const productID = "-//Assistant//Reminders//EN"

// CalDAV mirrors reminders as events of a single CalDAV collection. Events
// are created for the current day in the configured location.
type CalDAV struct {
	log          logging.Logger
	client       *caldav.Client
	calendarPath string
	location     *time.Location
	duration     time.Duration
	now          func() time.Time
	newUID       func() string
}

type Options struct {
	CalendarURL *url.URL
	Username    string
	Password    string
	Location    *time.Location
	Duration    time.Duration
	Timeout     time.Duration
	Transport   http.RoundTripper
	UIDs        reminder.EventUIDGenerator
}

func NewCalDAV(log logging.Logger, opts Options, now func() time.Time) (*CalDAV, error) {
	if opts.CalendarURL == nil {
		return nil, fmt.Errorf("calendar URL is not set")
	}
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient := &http.Client{
		Transport: &basicAuthTransport{username: opts.Username, password: opts.Password, base: base},
		Timeout:   opts.Timeout,
	}
	client, err := caldav.NewClient(httpClient, opts.CalendarURL.String())
	if err != nil {
		return nil, fmt.Errorf("connect to CalDAV: %w", err)
	}

	location := opts.Location
	if location == nil {
		location = time.Local
	}
	calendarPath := opts.CalendarURL.Path
	if !strings.HasSuffix(calendarPath, "/") {
		calendarPath += "/"
	}
	newUID := func() string {
		return fmt.Sprintf("%d@assistant", now().UnixNano())
	}
	if opts.UIDs != nil {
		newUID = opts.UIDs.GenerateEventUID
	}
	return &CalDAV{
		log:          log,
		client:       client,
		calendarPath: calendarPath,
		location:     location,
		duration:     opts.Duration,
		now:          now,
		newUID:       newUID,
	}, nil
}

func (c *CalDAV) CreateEvent(ctx context.Context, summary string, start reminder.Time) (reminder.EventHandle, error) {
	begin, end, err := c.window(start)
	if err != nil {
		return reminder.EventHandle{}, err
	}

	uid := c.newUID()
	path := c.calendarPath + uid + ".ics"
	cal := eventToICS(uid, summary, begin, end, c.now())

	if _, err := c.client.PutCalendarObject(ctx, path, cal); err != nil {
		return reminder.EventHandle{}, fmt.Errorf("create event: %w", err)
	}

	c.log.Info(
		ctx,
		"Calendar event stored.",
		logging.Entry("path", path),
		logging.Entry("start", begin),
		logging.Entry("end", end),
	)
	return reminder.EventHandle{UID: uid, Path: path}, nil
}

func (c *CalDAV) window(start reminder.Time) (time.Time, time.Time, error) {
	begin := carbon.Time2Carbon(c.now()).
		SetTimezone(c.location.String()).
		SetTimeMicro(int(start.Hour()), int(start.Minute()), 0, 0)
	if begin.Error != nil {
		return time.Time{}, time.Time{}, begin.Error
	}
	end := begin.AddDuration(c.duration.String())
	if end.Error != nil {
		return time.Time{}, time.Time{}, end.Error
	}
	return begin.Carbon2Time(), end.Carbon2Time(), nil
}

func eventToICS(uid, summary string, begin, end, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uid)
	event.Props.SetText(ical.PropSummary, summary)
	event.Props.SetDateTime(ical.PropDateTimeStart, begin.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, end.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())

	cal.Children = append(cal.Children, event.Component)
	return cal
}

type basicAuthTransport struct {
	username string
	password string
	base     http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.username != "" {
		req.SetBasicAuth(t.username, t.password)
	}
	return t.base.RoundTrip(req)
}

// Disabled is used when no calendar is configured.
type Disabled struct {
	log logging.Logger
}

func NewDisabled(log logging.Logger) *Disabled {
	return &Disabled{log: log}
}

func (d *Disabled) CreateEvent(ctx context.Context, summary string, start reminder.Time) (reminder.EventHandle, error) {
	d.log.Debug(ctx, "Calendar is not configured.", logging.Entry("summary", summary), logging.Entry("start", start))
	return reminder.EventHandle{}, reminder.ErrCalendarDisabled
}
