package jsoncfg

import (
	"encoding/json"
	"fmt"
	"time"
)

// ReminderConfig is the stored daily reminder preference. Delivery is out of
// scope for the server; clients read it back and schedule locally.
type ReminderConfig struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour"`
}

// PrefsJSON is the normalized preferences document persisted in
// users.properties.
type PrefsJSON struct {
	Version   string         `json:"version"`
	WeekStart string         `json:"week_start"`
	Reminder  ReminderConfig `json:"reminder"`
}

var allowedWeekStarts = map[string]time.Weekday{
	"monday": time.Monday,
	"sunday": time.Sunday,
}

const (
	// DefaultPrefsVersion represents the schema version persisted for preferences.
	DefaultPrefsVersion = "2026-01"
	// DefaultWeekStart is applied when the document omits the week start.
	DefaultWeekStart = "monday"
	// DefaultReminderHour is the local hour used when a reminder is enabled without one.
	DefaultReminderHour = 20
)

// Normalize ensures the preferences document respects server defaults.
func (p *PrefsJSON) Normalize() {
	if p == nil {
		return
	}
	if p.Version == "" {
		p.Version = DefaultPrefsVersion
	}
	if p.WeekStart == "" {
		p.WeekStart = DefaultWeekStart
	}
	if p.Reminder.Enabled && p.Reminder.Hour == 0 {
		p.Reminder.Hour = DefaultReminderHour
	}
}

// Validate ensures the preferences document satisfies the contract before
// persistence.
func (p PrefsJSON) Validate() error {
	if _, ok := allowedWeekStarts[p.WeekStart]; !ok {
		return fmt.Errorf("week_start must be one of monday, sunday")
	}
	if p.Reminder.Hour < 0 || p.Reminder.Hour > 23 {
		return fmt.Errorf("reminder.hour must be between 0 and 23")
	}
	return nil
}

// WeekStartWeekday maps the stored week start onto a time.Weekday for
// calendar layout. Unknown values fall back to Monday.
func (p PrefsJSON) WeekStartWeekday() time.Weekday {
	if wd, ok := allowedWeekStarts[p.WeekStart]; ok {
		return wd
	}
	return time.Monday
}

// DecodePrefs parses a stored properties payload, tolerating empty input.
func DecodePrefs(raw []byte) PrefsJSON {
	var p PrefsJSON
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &p)
	}
	p.Normalize()
	return p
}

func MustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("json marshal: %w", err))
	}
	return b
}
