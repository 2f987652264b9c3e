package controller_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"bethesda_backend/internals/databases/dbtest"
	"bethesda_backend/internals/features/events/controller"
	"bethesda_backend/internals/features/events/model"
	"bethesda_backend/internals/features/events/route"
	helper "bethesda_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       json.RawMessage    `json:"data"`
	Pagination *helper.Pagination `json:"pagination"`
}

type eventJSON struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Category  string  `json:"category"`
}

var fixedNow = time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	ctrl := controller.NewEventController(db)
	ctrl.Now = func() time.Time { return fixedNow }

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	route.RegisterEventRoutes(app.Group("/api"), ctrl)
	return app, db
}

func day(m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(2025, m, d, 0, 0, 0, 0, time.UTC))
}

func clock(h, m int) *datatypes.Time {
	t := datatypes.NewTime(h, m, 0, 0)
	return &t
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []model.EventModel{
		{EventTitle: "Spring Picnic", EventDate: day(5, 1), EventCategory: "Fellowship", EventStatus: model.EventStatusPublished},
		{EventTitle: "Easter Service", EventDate: day(4, 20), EventStartTime: clock(10, 0), EventCategory: "Worship", EventStatus: model.EventStatusPublished},
		{EventTitle: "Prayer Evening", EventDate: day(6, 15), EventStartTime: clock(19, 0), EventEndTime: clock(20, 30), EventCategory: "Worship", EventStatus: model.EventStatusPublished},
		{EventTitle: "Morning Prayer", EventDate: day(6, 15), EventStartTime: clock(7, 0), EventCategory: "Worship", EventStatus: model.EventStatusPublished},
		{EventTitle: "Youth Camp", EventDate: day(7, 10), EventCategory: "Youth", EventStatus: model.EventStatusPublished},
		{EventTitle: "Harvest Supper", EventDate: day(9, 21), EventCategory: "Fellowship", EventStatus: model.EventStatusPublished},
		{EventTitle: "Planning Draft", EventDate: day(8, 1), EventCategory: "Youth", EventStatus: model.EventStatusDraft},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed events: %v", err)
	}
}

func get(t *testing.T, app *fiber.App, path string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode %s: %v (%s)", path, err, raw)
	}
	return resp.StatusCode, env
}

func titles(t *testing.T, env envelope) []string {
	t.Helper()
	var events []eventJSON
	if err := json.Unmarshal(env.Data, &events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGetEventsByType(t *testing.T) {
	app, db := newApp(t)
	seed(t, db)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Morning Prayer", "Prayer Evening", "Youth Camp", "Harvest Supper"}},
		{"?type=upcoming", []string{"Morning Prayer", "Prayer Evening", "Youth Camp", "Harvest Supper"}},
		{"?type=past", []string{"Easter Service", "Spring Picnic"}},
		{"?type=all", []string{"Easter Service", "Spring Picnic", "Morning Prayer", "Prayer Evening", "Youth Camp", "Harvest Supper"}},
		{"?type=all&category=Fellowship", []string{"Spring Picnic", "Harvest Supper"}},
		{"?category=Youth", []string{"Youth Camp"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			status, env := get(t, app, "/api/events"+tt.query)
			if status != 200 {
				t.Fatalf("unexpected status %d", status)
			}
			if got := titles(t, env); !equal(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if env.Pagination.TotalItems != int64(len(tt.want)) {
				t.Fatalf("total %d, want %d", env.Pagination.TotalItems, len(tt.want))
			}
		})
	}
}

func TestGetEventsInvalidType(t *testing.T) {
	app, _ := newApp(t)
	status, env := get(t, app, "/api/events?type=someday")
	if status != 400 || env.Success {
		t.Fatalf("expected 400, got %d %+v", status, env)
	}
}

func TestGetEventsPagination(t *testing.T) {
	app, db := newApp(t)
	seed(t, db)

	_, env := get(t, app, "/api/events?type=all&limit=4&page=2")
	if got := titles(t, env); !equal(got, []string{"Youth Camp", "Harvest Supper"}) {
		t.Fatalf("unexpected page 2: %v", got)
	}
	p := env.Pagination
	if p.TotalItems != 6 || p.TotalPages != 2 || p.ItemsPerPage != 4 || p.HasNext || !p.HasPrev {
		t.Fatalf("unexpected pagination %+v", p)
	}
}

func TestGetFeaturedEvents(t *testing.T) {
	app, db := newApp(t)
	seed(t, db)

	_, env := get(t, app, "/api/events/upcoming/featured")
	if got := titles(t, env); !equal(got, []string{"Morning Prayer", "Prayer Evening", "Youth Camp"}) {
		t.Fatalf("unexpected featured %v", got)
	}
	if env.Pagination != nil {
		t.Fatal("featured list should not be paginated")
	}
}

func TestGetCategoriesList(t *testing.T) {
	app, db := newApp(t)
	seed(t, db)
	db.Create(&model.EventModel{EventTitle: "Uncategorised", EventDate: day(8, 8), EventStatus: model.EventStatusPublished})

	_, env := get(t, app, "/api/events/categories/list")
	var cats []struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}
	_ = json.Unmarshal(env.Data, &cats)
	want := map[string]int64{"Fellowship": 2, "Worship": 3, "Youth": 1}
	if len(cats) != len(want) {
		t.Fatalf("unexpected categories %+v", cats)
	}
	for _, c := range cats {
		if want[c.Category] != c.Count {
			t.Fatalf("category %q: got %d, want %d", c.Category, c.Count, want[c.Category])
		}
	}
}

func TestGetEventByID(t *testing.T) {
	app, db := newApp(t)
	seed(t, db)

	status, env := get(t, app, "/api/events/3")
	if status != 200 {
		t.Fatalf("unexpected status %d", status)
	}
	var e eventJSON
	_ = json.Unmarshal(env.Data, &e)
	if e.Title != "Prayer Evening" || e.Date != "2025-06-15" {
		t.Fatalf("unexpected event %+v", e)
	}
	if e.StartTime == nil || *e.StartTime != "19:00" || e.EndTime == nil || *e.EndTime != "20:30" {
		t.Fatalf("unexpected times %v %v", e.StartTime, e.EndTime)
	}

	for _, path := range []string{"/api/events/7", "/api/events/404", "/api/events/x1", "/api/events/0"} {
		status, _ := get(t, app, path)
		if status != 404 {
			t.Fatalf("%s: expected 404, got %d", path, status)
		}
	}
}
