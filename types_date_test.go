package folio

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-03-02", want: NewDate(2026, time.March, 2)},
		{in: "2026-3-2", want: NewDate(2026, time.March, 2)},
		{in: "2026-13-02", wantErr: true},
		{in: "yesterday", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2026, time.March, 2).String(); got != "2026-03-02" {
		t.Errorf("String() = %q, want 2026-03-02", got)
	}
}

func TestDateAddNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   Date
		add  int
		want Date
	}{
		{"next day", NewDate(2026, time.March, 2), 1, NewDate(2026, time.March, 3)},
		{"month rollover", NewDate(2026, time.January, 31), 1, NewDate(2026, time.February, 1)},
		{"leap day", NewDate(2024, time.February, 28), 1, NewDate(2024, time.February, 29)},
		{"backwards across year", NewDate(2026, time.January, 1), -1, NewDate(2025, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Add(tt.add); got != tt.want {
				t.Errorf("%v.Add(%d) = %v, want %v", tt.in, tt.add, got, tt.want)
			}
		})
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2026, time.March, 2)
	b := NewDate(2026, time.March, 3)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() is inconsistent for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After() is inconsistent for %v and %v", a, b)
	}
}

func TestDateJSONRoundtrip(t *testing.T) {
	d := NewDate(2026, time.March, 2)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got Date
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("roundtrip = %v, want %v", got, d)
	}
}
