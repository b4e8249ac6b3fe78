package common

import "testing"

func TestHasAny(t *testing.T) {
	tests := []struct {
		s        string
		subs     []string
		expected bool
	}{
		{"Moderate or heavy rain shower", []string{"rain"}, true},
		{"Patchy SNOW possible", []string{"snow"}, true},
		{"Sunny", []string{"rain", "snow"}, false},
		{"", []string{"rain"}, false},
		{"Blizzard", []string{"sleet", "blizzard"}, true},
	}

	for _, tt := range tests {
		if got := HasAny(tt.s, tt.subs...); got != tt.expected {
			t.Errorf("HasAny(%q, %v) = %v, want %v", tt.s, tt.subs, got, tt.expected)
		}
	}
}
