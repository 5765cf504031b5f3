package services

import (
	"log"
	"sort"

	"emlakjet_scraper/models"
)

// Insights is the post-run summary printed after the CSV is written.
type Insights struct {
	Total      int
	WithPrice  int
	MinPrice   float64
	MaxPrice   float64
	AvgPrice   float64
	AvgPerM2   float64
	WithPerM2  int
	ByDistrict []DistrictCount
}

type DistrictCount struct {
	District string
	Count    int
}

// BuildInsights aggregates price statistics and district counts over the
// final record set. Records with unparseable prices only count toward Total.
func BuildInsights(records []*models.Record) *Insights {
	ins := &Insights{Total: len(records)}

	var priceSum, perM2Sum float64
	districts := make(map[string]int)

	for _, r := range records {
		if r.Price != nil {
			p := *r.Price
			if ins.WithPrice == 0 || p < ins.MinPrice {
				ins.MinPrice = p
			}
			if p > ins.MaxPrice {
				ins.MaxPrice = p
			}
			priceSum += p
			ins.WithPrice++
		}
		if ppm := r.PricePerM2(); ppm != nil {
			perM2Sum += *ppm
			ins.WithPerM2++
		}
		if r.District != "" {
			districts[r.District]++
		}
	}

	if ins.WithPrice > 0 {
		ins.AvgPrice = priceSum / float64(ins.WithPrice)
	}
	if ins.WithPerM2 > 0 {
		ins.AvgPerM2 = perM2Sum / float64(ins.WithPerM2)
	}

	for d, n := range districts {
		ins.ByDistrict = append(ins.ByDistrict, DistrictCount{District: d, Count: n})
	}
	sort.Slice(ins.ByDistrict, func(i, j int) bool {
		if ins.ByDistrict[i].Count != ins.ByDistrict[j].Count {
			return ins.ByDistrict[i].Count > ins.ByDistrict[j].Count
		}
		return ins.ByDistrict[i].District < ins.ByDistrict[j].District
	})

	return ins
}

// Log writes the summary through the standard logger.
func (ins *Insights) Log() {
	log.Printf("total listings: %d", ins.Total)
	if ins.WithPrice > 0 {
		log.Printf("price range: %.0f - %.0f TL", ins.MinPrice, ins.MaxPrice)
		log.Printf("average: %.0f TL", ins.AvgPrice)
	}
	if ins.WithPerM2 > 0 {
		log.Printf("average price/m2: %.0f TL", ins.AvgPerM2)
	}

	top := ins.ByDistrict
	if len(top) > 5 {
		top = top[:5]
	}
	for _, dc := range top {
		log.Printf("  %s: %d listings", dc.District, dc.Count)
	}
}
