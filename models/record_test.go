package models

import (
	"testing"
	"time"
)

func TestPricePerM2(t *testing.T) {
	price := 1000000.0
	area := "100"

	r := &Record{CapturedAt: time.Now(), PriceText: "1.000.000 TL", Price: &price, Area: &area}
	got := r.PricePerM2()
	if got == nil || *got != 10000.0 {
		t.Fatalf("expected 10000, got %v", got)
	}
}

func TestPricePerM2ZeroArea(t *testing.T) {
	price := 1000000.0
	area := "0"

	r := &Record{Price: &price, Area: &area}
	if got := r.PricePerM2(); got != nil {
		t.Fatalf("expected nil for zero area, got %v", *got)
	}
}

func TestPricePerM2MissingInputs(t *testing.T) {
	price := 15000.0
	area := "85"

	noArea := &Record{Price: &price}
	if got := noArea.PricePerM2(); got != nil {
		t.Fatalf("expected nil without area, got %v", *got)
	}

	noPrice := &Record{Area: &area}
	if got := noPrice.PricePerM2(); got != nil {
		t.Fatalf("expected nil without price, got %v", *got)
	}
}

func TestAreaM2(t *testing.T) {
	area := "120"
	r := &Record{Area: &area}
	if got := r.AreaM2(); got == nil || *got != 120 {
		t.Fatalf("expected 120, got %v", got)
	}

	if got := (&Record{}).AreaM2(); got != nil {
		t.Fatalf("expected nil without area, got %v", *got)
	}
}
