package errors

import (
	"testing"
)

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"lower bound", 2, false},
		{"upper bound", 10, false},
		{"below", 1, true},
		{"above", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange("Levels", tt.value, 2, 10)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRange(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && UserMessage(err) != "Levels must be between 2 and 10" {
				t.Errorf("UserMessage() = %q", UserMessage(err))
			}
		})
	}
}

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single letter", "F", false},
		{"two letters", "AB", false},

		{"empty", "", true},
		{"lowercase", "f", true},
		{"digit", "A1", true},
		{"space", "A B", true},
		{"too long", "ABCDEFGHI", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTarget(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTarget(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTarget) {
				t.Errorf("ValidateTarget(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestNormalizeTarget(t *testing.T) {
	if got := NormalizeTarget("  f \n"); got != "F" {
		t.Errorf("NormalizeTarget() = %q, want %q", got, "F")
	}
}

func TestValidateText(t *testing.T) {
	if err := ValidateText("HELLO WORLD\n"); err != nil {
		t.Errorf("ValidateText() unexpected error: %v", err)
	}
	if err := ValidateText(""); err == nil {
		t.Error("empty text should fail")
	}
	if err := ValidateText("foo\x00bar"); err == nil {
		t.Error("null byte should fail")
	}
}

func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"key", "KEY", false},
		{"Lemon-42!", "LEMON", false},
		{"", "", true},
		{"1234", "", true},
	}

	for _, tt := range tests {
		got, err := ValidateKeyword("Vigenère cipher", tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateKeyword(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ValidateKeyword(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
