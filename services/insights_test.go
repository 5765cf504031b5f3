package services

import (
	"testing"

	"emlakjet_scraper/models"
)

func priced(price float64, district string) *models.Record {
	return &models.Record{Price: &price, District: district}
}

func TestBuildInsights(t *testing.T) {
	records := []*models.Record{
		priced(10000, "Kadıköy"),
		priced(20000, "Kadıköy"),
		priced(30000, "Beşiktaş"),
		{District: "Fatih"}, // no price
	}

	ins := BuildInsights(records)

	if ins.Total != 4 || ins.WithPrice != 3 {
		t.Fatalf("expected 4 total / 3 priced, got %d / %d", ins.Total, ins.WithPrice)
	}
	if ins.MinPrice != 10000 || ins.MaxPrice != 30000 {
		t.Fatalf("unexpected price range %v - %v", ins.MinPrice, ins.MaxPrice)
	}
	if ins.AvgPrice != 20000 {
		t.Fatalf("expected average 20000, got %v", ins.AvgPrice)
	}
	if len(ins.ByDistrict) != 3 || ins.ByDistrict[0].District != "Kadıköy" || ins.ByDistrict[0].Count != 2 {
		t.Fatalf("unexpected district ranking %v", ins.ByDistrict)
	}
}

func TestBuildInsightsPerM2(t *testing.T) {
	price := 100000.0
	area := "100"
	records := []*models.Record{
		{Price: &price, Area: &area},
		{Price: &price}, // no area, excluded from the per-m2 average
	}

	ins := BuildInsights(records)
	if ins.WithPerM2 != 1 || ins.AvgPerM2 != 1000 {
		t.Fatalf("expected per-m2 average 1000 over 1 record, got %v over %d", ins.AvgPerM2, ins.WithPerM2)
	}
}

func TestBuildInsightsEmpty(t *testing.T) {
	ins := BuildInsights(nil)
	if ins.Total != 0 || ins.WithPrice != 0 || len(ins.ByDistrict) != 0 {
		t.Fatalf("expected zeroed insights, got %+v", ins)
	}
}
