package errors

import (
	"strings"
	"testing"
)

func TestValidateViewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "blue", false},
		{"valid with dash", "red-view", false},
		{"valid with underscore", "_root", false},
		{"valid with dot", "panel.header", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"leading digit", "1view", true},
		{"space", "blue view", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"slash", "a/b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateViewName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateViewName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateViewName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"dot", "dot", false},
		{"svg upper", "SVG", false},
		{"empty", "", true},
		{"unknown", "png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.input, "dot", "svg")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
