package errors

import (
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "monthly", false},
		{"with underscore", "daily_notes", false},
		{"with dash", "to-do", false},
		{"camel", "MonthsOnSides", false},
		{"with digits", "notes2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 80)), true},
		{"starts with digit", "2notes", true},
		{"starts with dash", "-notes", true},
		{"dot", "mos.notes", true},
		{"slash", "a/b", true},
		{"space", "my notes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("section", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateDocumentName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"tex", "monthly.tex", false},
		{"no extension", "notes", false},

		{"empty", "", true},
		{"with path /", "out/monthly.tex", true},
		{"with path \\", "out\\monthly.tex", true},
		{"hidden", ".monthly.tex", true},
		{"control char", "month\x01ly.tex", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocumentName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
