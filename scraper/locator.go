package scraper

import "strings"

// Finder is anything a CSS selector can be run against: the page itself or
// a single element. A failed lookup may come back as an error or an empty
// slice; Locate treats both the same.
type Finder interface {
	Find(selector string) ([]Element, error)
}

// Element is one matched node. Sub-lookups scope to the element.
type Element interface {
	Finder
	Text() (string, error)
	Attr(name string) (string, error)
}

// Logf is the diagnostics sink handed to components that report progress.
type Logf func(format string, args ...any)

func discardLogf(string, ...any) {}

// Match is the outcome of a candidate search: which selector won and what
// it matched. A zero Match means no candidate yielded anything; callers
// treat that as "field absent", not as a failure.
type Match struct {
	Selector string
	Elements []Element
}

// Locate tries each candidate selector in order against scope and returns
// the first that yields at least one element, together with everything it
// matched. A lookup error on one candidate counts as zero matches and the
// search moves on. Later candidates are never consulted once one hits, even
// if they would match more elements.
func Locate(scope Finder, candidates []string, what string, logf Logf) Match {
	if logf == nil {
		logf = discardLogf
	}

	for _, sel := range candidates {
		elements, err := scope.Find(sel)
		if err != nil || len(elements) == 0 {
			continue
		}
		logf("found %d %s using: %s", len(elements), what, sel)
		return Match{Selector: sel, Elements: elements}
	}

	logf("no %s found with any selector", what)
	return Match{}
}

// firstText returns the first element in the match with non-empty trimmed
// text, or "" when none has any.
func firstText(m Match) string {
	for _, el := range m.Elements {
		if text, err := el.Text(); err == nil {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
