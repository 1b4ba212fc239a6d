package analytics

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDisplayLabelTruncatesOnRunes(t *testing.T) {
	description := strings.Repeat("É", 30)
	label := displayLabel("100001", description, 25)
	if !utf8.ValidString(label) {
		t.Fatalf("label is not valid UTF-8: %q", label)
	}
	if want := "100001 - " + strings.Repeat("É", 25) + "..."; label != want {
		t.Fatalf("label = %q, want %q", label, want)
	}
}

func TestDisplayLabelKeepsShortDescriptions(t *testing.T) {
	if got := displayLabel("100001", "CORVINA RED", 25); got != "100001 - CORVINA RED" {
		t.Fatalf("label = %q", got)
	}
}

func TestReverseRankedFlipsOrder(t *testing.T) {
	items := []rankedItem{{Code: "a", Rank: 1}, {Code: "b", Rank: 2}, {Code: "c", Rank: 3}}
	out := reverseRanked(items)
	if out[0].Code != "c" || out[2].Code != "a" {
		t.Fatalf("unexpected order %v", out)
	}
	if items[0].Code != "a" {
		t.Fatalf("input mutated: %v", items)
	}
}
