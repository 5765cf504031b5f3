package scraper

import (
	"errors"
	"testing"
)

func TestLocateFirstMatchWins(t *testing.T) {
	scope := &fakeScope{
		results: map[string][]Element{
			"a": {},
			"b": {textElement("b1"), textElement("b2")},
			"c": {textElement("c1"), textElement("c2"), textElement("c3"), textElement("c4"), textElement("c5")},
		},
	}

	match := Locate(scope, []string{"a", "b", "c"}, "things", nil)
	if match.Selector != "b" {
		t.Fatalf("expected selector b, got %q", match.Selector)
	}
	if len(match.Elements) != 2 {
		t.Fatalf("expected b's 2 elements, got %d", len(match.Elements))
	}
}

func TestLocateNoCandidateMatches(t *testing.T) {
	scope := &fakeScope{results: map[string][]Element{}}

	match := Locate(scope, []string{"a", "b", "c"}, "things", nil)
	if match.Selector != "" || len(match.Elements) != 0 {
		t.Fatalf("expected empty match, got %+v", match)
	}
}

func TestLocateLookupErrorIsZeroMatches(t *testing.T) {
	scope := &fakeScope{
		results: map[string][]Element{
			"b": {textElement("b1")},
		},
		errs: map[string]error{
			"a": errors.New("invalid selector"),
		},
	}

	match := Locate(scope, []string{"a", "b"}, "things", nil)
	if match.Selector != "b" {
		t.Fatalf("expected error candidate skipped, got %q", match.Selector)
	}
}

func TestLocateReportsWinningSelector(t *testing.T) {
	scope := &fakeScope{
		results: map[string][]Element{"x": {textElement("hit")}},
	}

	var logged string
	Locate(scope, []string{"x"}, "cards", func(format string, args ...any) {
		logged = format
	})
	if logged == "" {
		t.Fatalf("expected the match to be logged")
	}
}

func TestFirstTextSkipsEmptyAndErrored(t *testing.T) {
	match := Match{Elements: []Element{
		textElement("   "),
		&fakeElement{textErr: errors.New("stale element")},
		textElement(" 25.000 TL "),
	}}

	if got := firstText(match); got != "25.000 TL" {
		t.Fatalf("expected trimmed first non-empty text, got %q", got)
	}
}
