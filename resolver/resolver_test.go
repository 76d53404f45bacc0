package resolver

import (
	"errors"
	"strings"
	"testing"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"display name", "John Doe", "john-doe"},
		{"middle name", "John Middle Doe", "john-middle-doe"},
		{"already a slug", "john-doe", "john-doe"},
		{"duplicate-name suffix", "benjamin-thomas-2", "benjamin-thomas-2"},
		{"extra whitespace", "  John   Doe  ", "john-doe"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.expected {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRiderURL(t *testing.T) {
	u, err := RiderURL(BaseURL, "John Doe")
	if err != nil {
		t.Fatalf("RiderURL() error = %v", err)
	}
	if u != "https://www.procyclingstats.com/rider/john-doe" {
		t.Errorf("RiderURL() = %q", u)
	}

	var resErr *ResolutionError
	if _, err := RiderURL(BaseURL, "   "); !errors.As(err, &resErr) {
		t.Errorf("RiderURL() on blank name: error = %v, want ResolutionError", err)
	}
}

func TestRiderID(t *testing.T) {
	if got := RiderID("https://www.procyclingstats.com/rider/john-doe"); got != "john-doe" {
		t.Errorf("RiderID() = %q, want %q", got, "john-doe")
	}
}

func TestResultsURL(t *testing.T) {
	u := ResultsURL(BaseURL, "john-doe", "250")

	if !strings.HasPrefix(u, BaseURL+"/rider.php?") {
		t.Errorf("ResultsURL() = %q, want rider.php endpoint", u)
	}
	for _, param := range []string{"limit=100", "offset=250", "id=john-doe", "p=results", "sort=date"} {
		if !strings.Contains(u, param) {
			t.Errorf("ResultsURL() missing %q in %q", param, u)
		}
	}
}
