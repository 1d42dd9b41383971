package mongo

import (
	"regexp"
	"testing"
)

func TestTransportTypeFilter_ExactMatch(t *testing.T) {
	f := transportTypeFilter("Car")
	if f.Pattern != "^Car$" {
		t.Fatalf("pattern = %q, want %q", f.Pattern, "^Car$")
	}
	if f.Options != "i" {
		t.Fatalf("options = %q, want %q", f.Options, "i")
	}

	re := regexp.MustCompile("(?i)" + f.Pattern)
	if !re.MatchString("car") {
		t.Fatalf("expected case-insensitive match on %q", "car")
	}
	if re.MatchString("carpet") {
		t.Fatalf("filter must not match a prefix")
	}
}

// A metacharacter-bearing type must match only its literal text, never act
// as a pattern against stored values.
func TestTransportTypeFilter_QuotesMetacharacters(t *testing.T) {
	f := transportTypeFilter(".*")
	if f.Pattern != `^\.\*$` {
		t.Fatalf("pattern = %q, want %q", f.Pattern, `^\.\*$`)
	}

	re := regexp.MustCompile("(?i)" + f.Pattern)
	for _, stored := range []string{"car", "bike", "scooter"} {
		if re.MatchString(stored) {
			t.Fatalf("wildcard input matched stored type %q", stored)
		}
	}
	if !re.MatchString(".*") {
		t.Fatalf("expected literal match on the quoted input")
	}
}
