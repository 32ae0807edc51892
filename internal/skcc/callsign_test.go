package skcc

import "testing"

func TestNormalizeCallsign(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"w4gns", "W4GNS"},
		{" W4GNS ", "W4GNS"},
		{"W4GNS/P", "W4GNS"},
		{"W4GNS/QRP", "W4GNS"},
		{"EA8/W4GNS", "W4GNS"},
		{"K1ABC/7", "K1ABC"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeCallsign(tt.raw); got != tt.want {
			t.Errorf("NormalizeCallsign(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestBaseCall(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"K9SKC", "K9SKC"},
		{"K9SKC/7", "K9SKC"},
		{"k3y/4", "K3Y"},
		{"EA8/W4GNS", "EA8"},
	}
	for _, tt := range tests {
		if got := BaseCall(tt.raw); got != tt.want {
			t.Errorf("BaseCall(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestExtractPrefix(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"W4GNS", "W4"},
		{"AA1A", "AA1"},
		{"2E0ABC", "2E0"},
		{"VE3XYZ", "VE3"},
		{"K9SKC/7", "K9"},
		{"F6ABC", "F6"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractPrefix(tt.raw); got != tt.want {
			t.Errorf("ExtractPrefix(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
