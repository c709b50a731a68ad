package regions

import (
	"strings"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"upper case IND", "IND", true},
		{"lower case ind", "ind", true},
		{"mixed case Ind", "Ind", true},
		{"upper case BR", "BR", true},
		{"lower case sg", "sg", true},
		{"upper case RU", "RU", true},
		{"lower case id", "id", true},
		{"upper case TW", "TW", true},
		{"lower case us", "us", true},
		{"upper case VN", "VN", true},
		{"lower case th", "th", true},
		{"upper case ME", "ME", true},
		{"lower case pk", "pk", true},
		{"mixed case cis", "cIs", true},
		{"upper case BD", "BD", true},
		{"unknown code", "EU", false},
		{"empty string", "", false},
		{"whitespace padded", " IND", false},
		{"partial match", "IN", false},
		{"superset", "INDIA", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.code); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestIsValidAllSupported(t *testing.T) {
	for _, code := range Supported() {
		if !IsValid(code) {
			t.Errorf("IsValid(%q) = false, want true", code)
		}
		if !IsValid(strings.ToLower(code)) {
			t.Errorf("IsValid(%q) = false, want true", strings.ToLower(code))
		}
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"ind", "IND"},
		{"IND", "IND"},
		{"cIs", "CIS"},
		{"bd", "BD"},
	}

	for _, tt := range tests {
		if got := Canonical(tt.code); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestSupportedOrder(t *testing.T) {
	want := []string{"IND", "BR", "SG", "RU", "ID", "TW", "US", "VN", "TH", "ME", "PK", "CIS", "BD"}

	got := Supported()
	if len(got) != len(want) {
		t.Fatalf("Supported() returned %d codes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Supported()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	first := Supported()
	first[0] = "XX"

	second := Supported()
	if second[0] != "IND" {
		t.Errorf("Supported() shares backing array with callers: got %q, want IND", second[0])
	}
}

func TestSupportedList(t *testing.T) {
	want := "IND, BR, SG, RU, ID, TW, US, VN, TH, ME, PK, CIS, BD"
	if got := SupportedList(); got != want {
		t.Errorf("SupportedList() = %q, want %q", got, want)
	}
}
