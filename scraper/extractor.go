package scraper

import (
	"strings"
	"time"

	"emlakjet_scraper/config"
	"emlakjet_scraper/models"
	"emlakjet_scraper/normalize"
)

// Extractor assembles one Record per listing card. A card without readable
// price text produces no record; everything else degrades to empty/nil
// fields. One broken card never takes its siblings down.
type Extractor struct {
	sel  *config.Selectors
	logf Logf
}

func NewExtractor(sel *config.Selectors, logf Logf) *Extractor {
	if logf == nil {
		logf = discardLogf
	}
	return &Extractor{sel: sel, logf: logf}
}

// Extract reads one card. The second return value is false when the card
// was skipped (no price, or an unexpected failure mid-card).
func (e *Extractor) Extract(card Element, at time.Time) (rec *models.Record, emitted bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logf("card skipped after unexpected failure: %v", r)
			rec, emitted = nil, false
		}
	}()

	priceText := firstText(Locate(card, e.sel.Price, "price elements", nil))
	if priceText == "" {
		return nil, false
	}

	locationText := firstText(Locate(card, e.sel.Location, "location elements", nil))
	detailsText := e.detailsText(card)

	district, neighborhood := normalize.SplitLocation(locationText)

	rec = &models.Record{
		CapturedAt:   at,
		PriceText:    priceText,
		Price:        normalize.ParsePrice(priceText),
		LocationText: locationText,
		District:     district,
		Neighborhood: neighborhood,
		DetailsText:  detailsText,
		Rooms:        normalize.ParseRooms(detailsText),
		Floor:        normalize.ParseFloor(detailsText),
		Area:         normalize.ParseArea(detailsText),
		URL:          e.listingURL(card),
	}
	return rec, true
}

// detailsText reads the details container, falling back to the card's whole
// text so a structure change on the site degrades to messy text rather than
// a silently empty column.
func (e *Extractor) detailsText(card Element) string {
	if text := firstText(Locate(card, e.sel.Details, "detail elements", nil)); text != "" {
		return text
	}
	if text, err := card.Text(); err == nil {
		return strings.TrimSpace(text)
	}
	return ""
}

func (e *Extractor) listingURL(card Element) string {
	match := Locate(card, e.sel.Link, "anchors", nil)
	for _, el := range match.Elements {
		if href, err := el.Attr("href"); err == nil && href != "" {
			return absoluteURL(href)
		}
	}
	return ""
}

func absoluteURL(href string) string {
	if strings.HasPrefix(href, "/") {
		return config.BaseURL + href
	}
	return href
}
