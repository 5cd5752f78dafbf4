package rest

import (
	"net/http"
	"strconv"
)

// Pagination response headers. List endpoints return a bare JSON array and
// put paging metadata here instead of in the body.
const (
	HeaderLastPage     = "X-Last-Page"
	HeaderOffset       = "X-Offset"
	HeaderLimit        = "X-Limit"
	HeaderNoLimitCount = "X-No-Limit-Count"
)

// Meta is the pagination metadata of a list response.
type Meta struct {
	LastPage     bool
	Offset       int
	Limit        int
	NoLimitCount int
}

// ParseMeta reads pagination metadata from response headers. Missing or
// malformed headers decode to zero values.
func ParseMeta(h http.Header) Meta {
	m := Meta{}
	m.LastPage = h.Get(HeaderLastPage) == "true"
	m.Offset, _ = strconv.Atoi(h.Get(HeaderOffset))
	m.Limit, _ = strconv.Atoi(h.Get(HeaderLimit))
	m.NoLimitCount, _ = strconv.Atoi(h.Get(HeaderNoLimitCount))
	return m
}
