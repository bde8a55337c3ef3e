package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestFromQuery_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/pets/available?page=abc", nil)
	p := FromQuery(r)
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	r = httptest.NewRequest("GET", "/pets/available?page=3&limit=500", nil)
	p = FromQuery(r)
	if p.Page != 3 || p.Limit != MaxLimit {
		t.Fatalf("unexpected: %+v", p)
	}
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(Request{Page: 2, Limit: 10}, 25)
	if m.TotalPages != 3 || !m.HasMore || m.CurrentPage != 2 || m.TotalCount != 25 {
		t.Fatalf("unexpected meta: %+v", m)
	}

	m = NewMeta(Request{Page: 3, Limit: 10}, 25)
	if m.HasMore {
		t.Fatalf("last page should not have more")
	}

	m = NewMeta(Request{}, 0)
	if m.TotalPages != 0 || m.HasMore {
		t.Fatalf("unexpected empty meta: %+v", m)
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	got := Slice(items, Request{Page: 2, Limit: 2})
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("unexpected page: %v", got)
	}
	if got := Slice(items, Request{Page: 4, Limit: 2}); len(got) != 0 {
		t.Fatalf("expected empty page, got %v", got)
	}
}
