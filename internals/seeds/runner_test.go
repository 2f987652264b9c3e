package seeds_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bethesda_backend/internals/databases/dbtest"
	eventModel "bethesda_backend/internals/features/events/model"
	ministryModel "bethesda_backend/internals/features/ministries/model"
	sermonModel "bethesda_backend/internals/features/sermons/model"
	"bethesda_backend/internals/seeds"
	"bethesda_backend/internals/seeds/seedutil"

	"gorm.io/gorm"
)

func count(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)

	for i := 0; i < 2; i++ {
		if err := seeds.RunAllSeeds(db, "data"); err != nil {
			t.Fatalf("run #%d: %v", i+1, err)
		}
	}

	if n := count(t, db, &sermonModel.SermonModel{}); n != 5 {
		t.Fatalf("expected 5 sermons, got %d", n)
	}
	if n := count(t, db, &eventModel.EventModel{}); n != 5 {
		t.Fatalf("expected 5 events, got %d", n)
	}
	if n := count(t, db, &ministryModel.MinistryModel{}); n != 6 {
		t.Fatalf("expected 6 ministries, got %d", n)
	}

	var dinner eventModel.EventModel
	if err := db.Where("title = ?", "Thanksgiving Community Dinner").First(&dinner).Error; err != nil {
		t.Fatalf("load dinner: %v", err)
	}
	if dinner.EventStartTime == nil || dinner.EventStartTime.String() != "17:00:00" || dinner.EventEndTime != nil {
		t.Fatalf("unexpected times %v %v", dinner.EventStartTime, dinner.EventEndTime)
	}
	if dinner.EventMaxAttendees == nil || *dinner.EventMaxAttendees != 150 || !dinner.EventRegistrationRequired {
		t.Fatalf("unexpected registration fields %+v", dinner)
	}
	if got := time.Time(dinner.EventDate).Format("2006-01-02"); got != "2026-11-26" {
		t.Fatalf("unexpected date %s", got)
	}
}

func TestRunAllSeedsMissingDir(t *testing.T) {
	db := dbtest.Open(t)
	if err := seeds.RunAllSeeds(db, filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("missing files should be skipped: %v", err)
	}
}

func TestRunAllSeedsBadDate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sermons.json"), []byte(`[{"title":"x","speaker":"y","date":"05/01/2025"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := seeds.RunAllSeeds(dbtest.Open(t), dir); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantNil bool
		wantErr bool
	}{
		{"19:00", "19:00:00", false, false},
		{"07:15:30", "07:15:30", false, false},
		{"", "", true, false},
		{"7pm", "", true, true},
	}
	for _, tt := range tests {
		got, err := seedutil.ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseClock(%q) err = %v", tt.in, err)
		}
		if (got == nil) != tt.wantNil {
			t.Fatalf("ParseClock(%q) = %v", tt.in, got)
		}
		if got != nil && got.String() != tt.want {
			t.Fatalf("ParseClock(%q) = %s, want %s", tt.in, got.String(), tt.want)
		}
	}
}
