package pagination

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	pg := Paginator{PageSize: 10, MaxPageSize: 100}

	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr bool
	}{
		{name: "defaults", query: "", want: Params{Page: 1, Limit: 10}},
		{name: "explicit", query: "page=3&limit=6", want: Params{Page: 3, Limit: 6}},
		{name: "limit capped", query: "limit=1000", want: Params{Page: 1, Limit: 100}},
		{name: "bad limit ignored", query: "limit=abc", want: Params{Page: 1, Limit: 10}},
		{name: "zero limit ignored", query: "limit=0", want: Params{Page: 1, Limit: 10}},
		{name: "bad page", query: "page=abc", wantErr: true},
		{name: "zero page", query: "page=0", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			got, err := pg.Parse(q)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Params{Page: 1, Limit: 10}.Check(0))
	assert.NoError(t, Params{Page: 2, Limit: 10}.Check(11))
	assert.ErrorIs(t, Params{Page: 2, Limit: 10}.Check(10), ErrInvalidPage)
	assert.ErrorIs(t, Params{Page: 5, Limit: 10}.Check(0), ErrInvalidPage)
}

func TestNewResponseLinks(t *testing.T) {
	base, err := url.Parse("http://localhost/api/recipes/?tags=lunch&page=2&limit=2")
	require.NoError(t, err)

	resp := NewResponse(base, Params{Page: 2, Limit: 2}, 5, []int{3, 4})
	require.NotNil(t, resp.Next)
	require.NotNil(t, resp.Previous)
	assert.Equal(t, "http://localhost/api/recipes/?limit=2&page=3&tags=lunch", *resp.Next)
	assert.Equal(t, "http://localhost/api/recipes/?limit=2&tags=lunch", *resp.Previous)
	assert.EqualValues(t, 5, resp.Count)

	last := NewResponse(base, Params{Page: 3, Limit: 2}, 5, []int{5})
	assert.Nil(t, last.Next)

	first := NewResponse(base, Params{Page: 1, Limit: 2}, 1, []int{1})
	assert.Nil(t, first.Next)
	assert.Nil(t, first.Previous)
}

func TestRequestURL(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/users/?page=2", nil)
	r.Host = "example.org"
	assert.Equal(t, "http://example.org/api/users/?page=2", RequestURL(r, "").String())

	r.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://example.org/api/users/?page=2", RequestURL(r, "").String())

	assert.Equal(t, "https://foodgram.example/api/users/?page=2", RequestURL(r, "https://foodgram.example/").String())
}
