package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if d.String() != "2025-06-01" {
		t.Errorf("round trip mismatch: %s", d.String())
	}

	for _, bad := range []string{"", "June 1, 2025", "2025-13-01", "2025-06-01T10:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Day Date `json:"day"`
	}

	b, err := json.Marshal(payload{Day: NewDate(2025, time.June, 1)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"day":"2025-06-01"}` {
		t.Errorf("unexpected JSON: %s", b)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"day":"2025-06-03"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Day.String() != "2025-06-03" {
		t.Errorf("unexpected date: %s", p.Day.String())
	}

	if err := json.Unmarshal([]byte(`{"day":42}`), &p); err == nil {
		t.Errorf("expected error for non-string date")
	}
}

func TestBooking_Overlaps(t *testing.T) {
	b := Booking{
		StartDate: NewDate(2025, time.June, 3),
		EndDate:   NewDate(2025, time.June, 5),
	}

	cases := []struct {
		name       string
		start, end Date
		want       bool
	}{
		{"inside", NewDate(2025, time.June, 4), NewDate(2025, time.June, 4), true},
		{"covers", NewDate(2025, time.June, 1), NewDate(2025, time.June, 10), true},
		{"touches start", NewDate(2025, time.June, 1), NewDate(2025, time.June, 3), true},
		{"touches end", NewDate(2025, time.June, 5), NewDate(2025, time.June, 7), true},
		{"before", NewDate(2025, time.June, 1), NewDate(2025, time.June, 2), false},
		{"after", NewDate(2025, time.June, 6), NewDate(2025, time.June, 8), false},
	}

	for _, tc := range cases {
		if got := b.Overlaps(tc.start, tc.end); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}
