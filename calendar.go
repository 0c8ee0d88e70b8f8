package ics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
)

// ParseCalendar reads a VCALENDAR object from r.  It implements the grammar
// described in RFC 5545 section 3.4 which states:
//
//	"The iCalendar object MUST begin with the BEGIN property with a value of
//	 VCALENDAR and end with the END property with a value of VCALENDAR."
//
// ops are the same options the component parsers take, for example
// WithLocation or DuplicateModeKeepLast.
func ParseCalendar(r io.Reader, ops ...any) (*Calendar, error) {
	cfg, err := parseParseOps(ops)
	if err != nil {
		return nil, err
	}
	b, err := readDocument(NewCalendarStream(r))
	if err != nil {
		return nil, err
	}
	if b.Type != ComponentVCalendar {
		return nil, fmt.Errorf("%w: expected a vcalendar, got %s", ErrMalformedComponent, b.Type)
	}
	cal, err := calendarSchema.assemble(b, cfg)
	if err != nil {
		return nil, err
	}
	return &cal, nil
}

// ParseCalendarString is ParseCalendar over a string.
func ParseCalendarString(text string, ops ...any) (*Calendar, error) {
	return ParseCalendar(strings.NewReader(text), ops...)
}

func WithCustomClient(client *http.Client) *http.Client {
	return client
}

func WithCustomRequest(request *http.Request) *http.Request {
	return request
}

// ParseCalendarFromUrl retrieves an iCalendar object from the provided URL and
// parses it.  Many calendaring services expose feeds over HTTP.  opts may hold
// an HTTP client, a request, a context or any option ParseCalendar accepts.
func ParseCalendarFromUrl(url string, opts ...any) (*Calendar, error) {
	var ctx context.Context
	var req *http.Request
	var client HttpClientLike = http.DefaultClient
	var parseOps []any
	for opti, opt := range opts {
		switch opt := opt.(type) {
		case *http.Client:
			client = opt
		case HttpClientLike:
			client = opt
		case func() *http.Client:
			client = opt()
		case *http.Request:
			req = opt
		case func() *http.Request:
			req = opt()
		case context.Context:
			ctx = opt
		case func() context.Context:
			ctx = opt()
		case WithLocation, DuplicateMode, RecurEndConflict, *ParseConfiguration:
			parseOps = append(parseOps, opt)
		default:
			return nil, fmt.Errorf("unknown optional argument %d on ParseCalendarFromUrl: %s", opti, reflect.TypeOf(opt))
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		var err error
		req, err = http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating http request: %w", err)
		}
	}
	return parseCalendarFromHttpRequest(client, req, parseOps...)
}

type HttpClientLike interface {
	Do(req *http.Request) (*http.Response, error)
}

// parseCalendarFromHttpRequest executes the HTTP request using the supplied
// client and parses the response body.
func parseCalendarFromHttpRequest(client HttpClientLike, request *http.Request, ops ...any) (cal *Calendar, err error) {
	resp, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func(closer io.ReadCloser) {
		if derr := closer.Close(); derr != nil && err == nil {
			err = fmt.Errorf("http request close: %w", derr)
		}
	}(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("http request: unexpected status %s", resp.Status)
	}
	return ParseCalendar(resp.Body, ops...)
}
