// Package normalize turns raw listing text into typed fields. Every function
// is total over arbitrary input: a value that does not match comes back as
// nil, never as an error or a zero that could be mistaken for data.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// FloorGround and FloorRoof are the labels emitted for keyword floors.
	FloorGround = "Zemin"
	FloorRoof   = "Çatı"
)

var (
	priceJunkRe = regexp.MustCompile(`[^\d.,]`)
	roomsRe     = regexp.MustCompile(`(\d+)\s*\+\s*(\d+)`)
	areaRe      = regexp.MustCompile(`(?:^|\D)(\d{2,4})\s?m[²2]`)
	floorRe     = regexp.MustCompile(`(\d+)\.?\s*kat`)
)

// ParsePrice extracts a numeric price from text like "12.500 TL" or
// "1.234,56 TL". Everything but digits, '.' and ',' is stripped; when both
// separators appear the rightmost one is taken as the decimal point and the
// other removed; a lone ',' is a decimal point. A lone '.' is kept as-is,
// so "1.234" parses as 1.234, an ambiguity the site never exercises for
// rents.
func ParsePrice(text string) *float64 {
	txt := priceJunkRe.ReplaceAllString(text, "")
	if txt == "" {
		return nil
	}

	hasComma := strings.Contains(txt, ",")
	hasDot := strings.Contains(txt, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(txt, ",") > strings.LastIndex(txt, ".") {
			txt = strings.ReplaceAll(txt, ".", "")
			txt = strings.ReplaceAll(txt, ",", ".")
		} else {
			txt = strings.ReplaceAll(txt, ",", "")
		}
	case hasComma:
		txt = strings.ReplaceAll(txt, ",", ".")
	}

	v, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseRooms finds a "<n>+<n>" room layout (e.g. "3+1") anywhere in the
// text, tolerating spaces around the plus sign.
func ParseRooms(text string) *string {
	m := roomsRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return nil
	}
	v := m[1] + "+" + m[2]
	return &v
}

// ParseArea finds a 2-4 digit number directly followed by an area unit
// ("m²" or "m2", optional space) and returns the digits.
func ParseArea(text string) *string {
	m := areaRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return nil
	}
	return &m[1]
}

// ParseFloor extracts a floor label. Numbered floors ("5. Kat") win over
// the ground ("Zemin") and rooftop ("Çatı") keywords.
func ParseFloor(text string) *string {
	lower := strings.ToLower(text)
	if m := floorRe.FindStringSubmatch(lower); m != nil {
		return &m[1]
	}
	if strings.Contains(lower, "zemin") {
		v := FloorGround
		return &v
	}
	if strings.Contains(lower, "çatı") {
		v := FloorRoof
		return &v
	}
	return nil
}

// SplitLocation splits "Kadıköy, Caferağa" into district and neighborhood.
// The neighborhood is empty when the text has no second segment.
func SplitLocation(text string) (district, neighborhood string) {
	parts := strings.SplitN(text, ",", 3)
	district = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		neighborhood = strings.TrimSpace(parts[1])
	}
	return district, neighborhood
}
