package models

import "time"

// Record is one scraped rental listing. A Record only exists once price text
// was read from the card; every other field may be absent. Numeric fields are
// nil, never zero, when the raw text did not parse.
type Record struct {
	CapturedAt   time.Time
	PriceText    string
	Price        *float64
	LocationText string
	District     string
	Neighborhood string
	DetailsText  string
	Rooms        *string // e.g. "3+1"
	Floor        *string // digits, "Zemin" or "Çatı"
	Area         *string // digits, square meters
	URL          string
}

// AreaM2 returns the parsed area as a number, or nil when no area was parsed.
func (r *Record) AreaM2() *float64 {
	if r.Area == nil {
		return nil
	}
	var n float64
	for _, c := range *r.Area {
		if c < '0' || c > '9' {
			return nil
		}
		n = n*10 + float64(c-'0')
	}
	if *r.Area == "" {
		return nil
	}
	return &n
}

// PricePerM2 divides the numeric price by the area. It is nil unless both
// are present and the area is positive.
func (r *Record) PricePerM2() *float64 {
	area := r.AreaM2()
	if r.Price == nil || area == nil || *area <= 0 {
		return nil
	}
	v := *r.Price / *area
	return &v
}
