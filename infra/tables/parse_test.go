package tables

import "testing"

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{" 7 ", 7},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"3.5", 0},
		{"-2", 0},
		{"5,123,456", 5123456},
	}
	for _, tc := range cases {
		if got := ParseCount(tc.in); got != tc.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"5", 5},
		{" 7 ", 7},
		{"", 0},
		{"+5", 0},
		{"-1", 0},
		{"4,0", 0},
		{"3.5", 0},
		{"r7", 0},
		{"99999999999999999999999", 0},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
