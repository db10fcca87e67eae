package formatter

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name         string
		areaCode     string
		local        string
		wantE164     string
		wantNacional string
	}{
		{"Sao Paulo", "11", "987654321", "+5511987654321", "(11) 9 8765-4321"},
		{"Rio", "21", "912340567", "+5521912340567", "(21) 9 1234-0567"},
		{"Maranhao", "99", "900000001", "+5599900000001", "(99) 9 0000-0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e164, nacional := Format(tt.areaCode, tt.local)
			if e164 != tt.wantE164 {
				t.Errorf("e164 = %q, want %q", e164, tt.wantE164)
			}
			if nacional != tt.wantNacional {
				t.Errorf("nacional = %q, want %q", nacional, tt.wantNacional)
			}
			// "+55" + 2-digit DDD + 9-digit local = 14 characters.
			if len(e164) != 14 {
				t.Errorf("len(e164) = %d, want 14", len(e164))
			}
		})
	}
}

// Reconstructing the national format from the E.164 value must agree
// with the directly formatted one.
func TestFormatRoundTrip(t *testing.T) {
	pairs := []struct{ ddd, local string }{
		{"11", "987654321"},
		{"48", "955501234"},
		{"92", "918273645"},
	}

	for _, p := range pairs {
		e164, nacional := Format(p.ddd, p.local)

		local := strings.TrimPrefix(e164, "+55"+p.ddd)
		rebuilt := fmt.Sprintf("(%s) %c %s-%s", p.ddd, local[0], local[1:5], local[5:])
		if rebuilt != nacional {
			t.Errorf("round trip for %s%s: rebuilt %q, formatted %q", p.ddd, p.local, rebuilt, nacional)
		}
	}
}
