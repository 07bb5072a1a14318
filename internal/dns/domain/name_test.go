package domain

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	longLabel := strings.Repeat("a", 64)
	longName := strings.Repeat("a.", 127) + "com"

	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "example.com", false},
		{"trailing dot", "example.com.", false},
		{"single label", "localhost", false},
		{"empty name", "", true},
		{"empty label", "example..com", true},
		{"label too long", longLabel + ".com", true},
		{"name too long", longName, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateName(tc.input)
			if tc.wantErr && err == nil {
				t.Fatalf("ValidateName(%q) = nil, want error", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("ValidateName(%q) = %v, want nil", tc.input, err)
			}
		})
	}
}
