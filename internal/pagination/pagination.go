// Package pagination implements page-number pagination with a
// client-overridable page size.
package pagination

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	PageParam  = "page"
	LimitParam = "limit"
)

var ErrInvalidPage = errors.New("invalid page")

type Paginator struct {
	PageSize    int
	MaxPageSize int
}

// Params is a resolved page request.
type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Parse reads page and limit from the query. A malformed limit falls back
// to the default size; a malformed page is an error.
func (pg Paginator) Parse(query url.Values) (Params, error) {
	params := Params{Page: 1, Limit: pg.PageSize}
	if params.Limit <= 0 {
		params.Limit = 10
	}

	if raw := query.Get(LimitParam); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if pg.MaxPageSize > 0 && params.Limit > pg.MaxPageSize {
		params.Limit = pg.MaxPageSize
	}

	if raw := query.Get(PageParam); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Params{}, ErrInvalidPage
		}
		params.Page = page
	}
	return params, nil
}

// Check rejects pages past the end. The first page is always valid, even
// when there are no results.
func (p Params) Check(count int64) error {
	if p.Page > 1 && int64(p.Offset()) >= count {
		return ErrInvalidPage
	}
	return nil
}

type Response struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewResponse wraps one page of results with links to the neighbouring
// pages. requestURL must be absolute; its other query parameters are kept.
func NewResponse(requestURL *url.URL, p Params, count int64, results interface{}) Response {
	resp := Response{Count: count, Results: results}
	if int64(p.Page*p.Limit) < count {
		next := pageURL(requestURL, p.Page+1)
		resp.Next = &next
	}
	if p.Page > 1 {
		prev := pageURL(requestURL, p.Page-1)
		resp.Previous = &prev
	}
	return resp
}

func pageURL(base *url.URL, page int) string {
	u := *base
	q := u.Query()
	if page == 1 {
		q.Del(PageParam)
	} else {
		q.Set(PageParam, strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// RequestURL rebuilds the absolute URL of r. baseURL, when set, overrides
// the scheme and host the request arrived with.
func RequestURL(r *http.Request, baseURL string) *url.URL {
	u := *r.URL
	if baseURL != "" {
		if base, err := url.Parse(strings.TrimSuffix(baseURL, "/")); err == nil && base.Host != "" {
			u.Scheme = base.Scheme
			u.Host = base.Host
			return &u
		}
	}
	u.Scheme = "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		u.Scheme = "https"
	}
	u.Host = r.Host
	return &u
}
