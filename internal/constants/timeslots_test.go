package constants

import "testing"

func TestValidSlot(t *testing.T) {
	tests := []struct {
		name string
		m    int
		want bool
	}{
		{"opening slot", 480, true},
		{"closing slot", 1200, true},
		{"mid grid", 630, true},
		{"before opening", 450, false},
		{"after closing", 1230, false},
		{"off grid", 495, false},
		{"negative", -30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidSlot(tt.m); got != tt.want {
				t.Errorf("ValidSlot(%d) = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"opening", "08:00", 480, false},
		{"closing", "20:00", 1200, false},
		{"half hour", "10:30", 630, false},
		{"padded", " 09:00 ", 540, false},
		{"off grid", "08:15", 0, true},
		{"before opening", "07:30", 0, true},
		{"no colon", "0800", 0, true},
		{"garbage", "noon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlot(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSlot(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSlot(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSlot(t *testing.T) {
	if got := FormatSlot(480); got != "08:00" {
		t.Errorf("FormatSlot(480) = %q, want 08:00", got)
	}
	if got := FormatSlot(630); got != "10:30" {
		t.Errorf("FormatSlot(630) = %q, want 10:30", got)
	}
}
