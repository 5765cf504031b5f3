package scraper

import (
	"testing"

	"emlakjet_scraper/config"
	"emlakjet_scraper/models"
)

func newTestOrchestrator() *Orchestrator {
	return NewOrchestrator(&config.Config{Selectors: config.DefaultSelectors()})
}

func TestCollectCardsSkipsPricelessCard(t *testing.T) {
	o := newTestOrchestrator()

	page := &fakeScope{results: map[string][]Element{
		"div[data-testid='listing-card']": {
			listingCard("10.000 TL", "Kadıköy, Caferağa", "2+1 80 m²", "/ilan/1"),
			listingCard("12.000 TL", "Kadıköy, Moda", "3+1 110 m²", "/ilan/2"),
			listingCard("", "Üsküdar", "1+1 55 m²", "/ilan/3"),
			listingCard("15.000 TL", "Beşiktaş, Levent", "2+1 90 m²", "/ilan/4"),
			listingCard("9.500 TL", "Fatih", "1+1 60 m²", "/ilan/5"),
		},
	}}

	cards := Locate(page, o.cfg.Selectors.Cards, "property cards", nil)
	if len(cards.Elements) != 5 {
		t.Fatalf("expected 5 cards discovered, got %d", len(cards.Elements))
	}

	count := o.collectCards(cards.Elements)
	if count != 4 {
		t.Fatalf("expected 4 emitted records, got %d", count)
	}
	if len(o.records) != 4 {
		t.Fatalf("expected accumulator to grow by 4, got %d", len(o.records))
	}
}

func TestCollectCardsFallbackSelector(t *testing.T) {
	o := newTestOrchestrator()

	// Nothing under the preferred selectors; the generic "article" candidate
	// at the end of the list picks the cards up.
	page := &fakeScope{results: map[string][]Element{
		"article": {
			listingCard("11.000 TL", "Sarıyer", "2+1 95 m²", "/ilan/7"),
		},
	}}

	cards := Locate(page, o.cfg.Selectors.Cards, "property cards", nil)
	if cards.Selector != "article" {
		t.Fatalf("expected fallback to article selector, got %q", cards.Selector)
	}
	if count := o.collectCards(cards.Elements); count != 1 {
		t.Fatalf("expected 1 record, got %d", count)
	}
}

func TestDedupKeepsFirstOccurrence(t *testing.T) {
	rooms := "3+1"
	first := &models.Record{PriceText: "25.000 TL", LocationText: "Kadıköy", Rooms: &rooms, URL: "first"}
	dup := &models.Record{PriceText: "25.000 TL", LocationText: "Kadıköy", Rooms: &rooms, URL: "second"}
	other := &models.Record{PriceText: "25.000 TL", LocationText: "Üsküdar", Rooms: &rooms}

	out := Dedup([]*models.Record{first, dup, other})
	if len(out) != 2 {
		t.Fatalf("expected 2 records after dedup, got %d", len(out))
	}
	if out[0].URL != "first" {
		t.Fatalf("expected first occurrence kept, got %q", out[0].URL)
	}
}

func TestDedupRoomLayoutDisambiguates(t *testing.T) {
	twoOne := "2+1"
	threeOne := "3+1"
	a := &models.Record{PriceText: "25.000 TL", LocationText: "Kadıköy", Rooms: &twoOne}
	b := &models.Record{PriceText: "25.000 TL", LocationText: "Kadıköy", Rooms: &threeOne}

	if out := Dedup([]*models.Record{a, b}); len(out) != 2 {
		t.Fatalf("same price+location with different layouts must both survive, got %d", len(out))
	}
}
