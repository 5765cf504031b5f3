// Package identity derives the duplicate-detection key for a listing.
// Two records are the same listing when price text, location text and room
// layout all agree after whitespace/case normalization.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"emlakjet_scraper/models"
)

var multiSpaceRegex = regexp.MustCompile(`\s+`)

// Key returns a stable hex key for dedup. The first record seen with a given
// key wins.
func Key(r *models.Record) string {
	rooms := ""
	if r.Rooms != nil {
		rooms = *r.Rooms
	}
	input := normalize(r.PriceText) + "|" + normalize(r.LocationText) + "|" + rooms
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:16])
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return multiSpaceRegex.ReplaceAllString(s, " ")
}
