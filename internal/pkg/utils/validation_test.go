package utils

import "testing"

func TestIsValidMobile(t *testing.T) {
	tests := []struct {
		name   string
		mobile int64
		want   bool
	}{
		{"ten digit number", 9876543210, true},
		{"country code prefix", 919876543210, true},
		{"too short", 12345, false},
		{"too long", 98765432101234, false},
		{"zero", 0, false},
		{"negative", -9876543210, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidMobile(tt.mobile); got != tt.want {
				t.Errorf("IsValidMobile(%d) = %v, want %v", tt.mobile, got, tt.want)
			}
		})
	}
}
