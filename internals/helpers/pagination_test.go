package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveFor(t *testing.T, query string, def, max int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, def, max)
		return nil
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/"+query, nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  Paging
	}{
		{"defaults", "", Paging{Page: 1, Limit: 10, Offset: 0}},
		{"explicit", "?page=3&limit=5", Paging{Page: 3, Limit: 5, Offset: 10}},
		{"per_page alias", "?page=2&per_page=7", Paging{Page: 2, Limit: 7, Offset: 7}},
		{"garbage", "?page=abc&limit=-4", Paging{Page: 1, Limit: 10, Offset: 0}},
		{"zero page", "?page=0", Paging{Page: 1, Limit: 10, Offset: 0}},
		{"capped", "?limit=1000", Paging{Page: 1, Limit: 100, Offset: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveFor(t, tc.query, 10, MaxPerPage); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(21, Paging{Page: 2, Limit: 10, Offset: 10})
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("expected next and prev on page 2: %+v", p)
	}
	if p.TotalItems != 21 || p.ItemsPerPage != 10 || p.CurrentPage != 2 {
		t.Fatalf("unexpected pagination %+v", p)
	}

	empty := BuildPagination(0, Paging{Page: 1, Limit: 10})
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("unexpected empty pagination %+v", empty)
	}
}
