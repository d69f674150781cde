package critiqapi

import (
	"fmt"
	"net/url"
)

type Query struct {
	Client   *Client
	Path     string
	Values   url.Values
	Fallback string
}

func NewQuery(c *Client, format string, a ...interface{}) *Query {
	return &Query{
		Client: c,
		Path:   fmt.Sprintf(format, a...),
		Values: make(url.Values),
	}
}

func (q *Query) AddValues(values url.Values) {
	for k, vv := range values {
		for _, v := range vv {
			q.Values.Add(k, v)
		}
	}
}

func (q *Query) AddString(key string, value string) {
	q.Values.Add(key, value)
}

func (q *Query) AddStringIfNonEmpty(key string, value string) {
	if value != "" {
		q.AddString(key, value)
	}
}

func (q *Query) AddInt64(key string, value int64) {
	q.Values.Add(key, fmt.Sprintf("%d", value))
}

func (q *Query) AddInt64IfNonZero(key string, value int64) {
	if value != 0 {
		q.AddInt64(key, value)
	}
}

// AddFilters adds each filter as its own query parameter, the way the
// catalog endpoint expects them (?search=...&genre=...).
func (q *Query) AddFilters(filters map[string]string) {
	for k, v := range filters {
		q.AddStringIfNonEmpty(k, v)
	}
}

// WithFallback sets the default error message used when the server
// replies with a non-2xx status and no parsable message.
func (q *Query) WithFallback(fallback string) *Query {
	q.Fallback = fallback
	return q
}

func (q *Query) URL() string {
	return q.Client.MakeValuesPath(q.Values, q.Path)
}

func (q *Query) Get(r interface{}) error {
	return q.Client.GetResponse(q.URL(), r, q.Fallback)
}
