package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Request es una página 1-based.
type Request struct {
	Page  int
	Limit int
}

// Normalize aplica defaults y tope de limit.
func (p Request) Normalize() Request {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p Request) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.Limit
}

// FromQuery lee ?page=&limit=; valores inválidos caen a default.
func FromQuery(r *http.Request) Request {
	q := r.URL.Query()
	return Request{
		Page:  atoi(q.Get("page")),
		Limit: atoi(q.Get("limit")),
	}.Normalize()
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Meta acompaña a cada respuesta paginada.
type Meta struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	HasMore     bool `json:"hasMore"`
}

func NewMeta(p Request, total int) Meta {
	p = p.Normalize()
	pages := 0
	if total > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Meta{
		CurrentPage: p.Page,
		TotalPages:  pages,
		TotalCount:  total,
		HasMore:     p.Page < pages,
	}
}

// Slice recorta items ya ordenados a la página pedida (adapters in-memory).
func Slice[T any](items []T, p Request) []T {
	p = p.Normalize()
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
