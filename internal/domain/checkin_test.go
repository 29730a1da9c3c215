package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "valid", in: "2026-01-15"},
		{name: "leap day", in: "2024-02-29"},
		{name: "non-leap february 29", in: "2026-02-29", wantErr: true},
		{name: "month out of range", in: "2026-13-01", wantErr: true},
		{name: "day out of range", in: "2026-04-31", wantErr: true},
		{name: "unpadded month", in: "2026-1-15", wantErr: true},
		{name: "unpadded day", in: "2026-01-5", wantErr: true},
		{name: "wrong separator", in: "2026/01/15", wantErr: true},
		{name: "trailing garbage", in: "2026-01-15x", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			day, err := ParseDay(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDay) {
					t.Fatalf("ParseDay(%q) error = %v, want ErrInvalidDay", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) unexpected error: %v", tc.in, err)
			}
			if got := FormatDay(day); got != tc.in {
				t.Fatalf("FormatDay(ParseDay(%q)) = %q", tc.in, got)
			}
		})
	}
}

func TestParseCheckinStatus(t *testing.T) {
	for _, valid := range []string{"done", "skipped", "missed"} {
		if _, err := ParseCheckinStatus(valid); err != nil {
			t.Fatalf("ParseCheckinStatus(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "DONE", "pending", "unrecorded"} {
		if _, err := ParseCheckinStatus(invalid); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("ParseCheckinStatus(%q) error = %v, want ErrInvalidStatus", invalid, err)
		}
	}
}

func TestUserLocationFallback(t *testing.T) {
	if got := (User{}).Location(); got != time.UTC {
		t.Fatalf("Location() for empty timezone = %v, want UTC", got)
	}
	if got := (User{Timezone: "Not/AZone"}).Location(); got != time.UTC {
		t.Fatalf("Location() for unknown timezone = %v, want UTC", got)
	}
	loc := (User{Timezone: "Asia/Jakarta"}).Location()
	if loc.String() != "Asia/Jakarta" {
		t.Fatalf("Location() = %v, want Asia/Jakarta", loc)
	}
}
