package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWebsite(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		valid bool
	}{
		{"bare domain gets https", "acmedental.com", "https://acmedental.com", true},
		{"existing scheme kept", "http://acmedental.com/about", "http://acmedental.com/about", true},
		{"https kept", "https://www.acmedental.com", "https://www.acmedental.com", true},
		{"whitespace trimmed", "  acmedental.com  ", "https://acmedental.com", true},
		{"empty rejected", "", "", false},
		{"no dot rejected", "localhost", "", false},
		{"garbage rejected", "not a url at all", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeWebsite(tt.raw)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		valid bool
	}{
		{"10 digit us", "5125550199", "+15125550199", true},
		{"formatted us", "(512) 555-0199", "+15125550199", true},
		{"11 digit with country code", "1-512-555-0199", "+15125550199", true},
		{"already e164", "+15125550199", "+15125550199", true},
		{"too short", "555-0199", "", false},
		{"11 digit wrong prefix", "25125550199", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.raw)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
