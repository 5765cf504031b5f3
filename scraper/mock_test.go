package scraper

import "errors"

// fakeElement is an in-memory DOM node for tests: its children are keyed by
// the selector that finds them.
type fakeElement struct {
	text     string
	attrs    map[string]string
	children map[string][]Element
	textErr  error
}

func (e *fakeElement) Find(selector string) ([]Element, error) {
	return e.children[selector], nil
}

func (e *fakeElement) Text() (string, error) {
	if e.textErr != nil {
		return "", e.textErr
	}
	return e.text, nil
}

func (e *fakeElement) Attr(name string) (string, error) {
	if v, ok := e.attrs[name]; ok {
		return v, nil
	}
	return "", errors.New("no such attribute")
}

// fakeScope is a page-level Finder with per-selector results and errors.
type fakeScope struct {
	results map[string][]Element
	errs    map[string]error
}

func (s *fakeScope) Find(selector string) ([]Element, error) {
	if err, ok := s.errs[selector]; ok {
		return nil, err
	}
	return s.results[selector], nil
}

func textElement(text string) *fakeElement {
	return &fakeElement{text: text}
}

// listingCard builds a card with the sub-structure the default selectors
// expect. Empty price means the card has no price sub-element at all.
func listingCard(price, location, details, href string) *fakeElement {
	card := &fakeElement{
		text:     price + "\n" + location + "\n" + details,
		children: make(map[string][]Element),
	}
	if price != "" {
		card.children["[data-testid='price']"] = []Element{textElement(price)}
	}
	if location != "" {
		card.children["[data-testid='location']"] = []Element{textElement(location)}
	}
	if details != "" {
		card.children["ul"] = []Element{textElement(details)}
	}
	if href != "" {
		card.children["a"] = []Element{&fakeElement{attrs: map[string]string{"href": href}}}
	}
	return card
}
