// Package seedutil holds JSON and date helpers shared by the seeders.
package seedutil

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// ReadJSON decodes a seed file into out.
func ReadJSON(path string, out any) error {
	log.Println("[SEED] 📥 reading", path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// ParseDate reads YYYY-MM-DD as a UTC calendar date.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return datatypes.Date(t), nil
}

// ParseClock reads HH:MM or HH:MM:SS; blank means no time.
func ParseClock(s string) (*datatypes.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			v := datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
			return &v, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q", s)
}

// DateKey is the dedupe key used for dated rows.
func DateKey(title string, d datatypes.Date) string {
	return title + "|" + time.Time(d).Format(dateLayout)
}
