package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"emlakjet_scraper/models"
)

// utf8BOM keeps Excel from mangling the Turkish characters.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"Tarih",
	"Fiyat",
	"Fiyat_Sayisal",
	"Fiyat_m2",
	"Ilce",
	"Mahalle",
	"Konum",
	"Oda_Sayisi",
	"Metrekare",
	"Metrekare_Sayisal",
	"Kat",
	"Detaylar",
	"URL",
}

// WriteCSV writes the final record set as a UTF-8-with-BOM CSV. The filename
// embeds the current timestamp so runs never overwrite each other; partial
// (interrupted) runs get their own filename pattern.
func WriteCSV(dir string, records []*models.Record, partial bool) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("csv: create output dir: %w", err)
	}

	name := "emlakjet_%s.csv"
	if partial {
		name = "emlakjet_partial_%s.csv"
	}
	path := filepath.Join(dir, fmt.Sprintf(name, time.Now().Format("20060102_150405")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("csv: create %q: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return "", fmt.Errorf("csv: write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("csv: write header: %w", err)
	}

	for _, r := range records {
		if err := w.Write(recordRow(r)); err != nil {
			return "", fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("csv: flush: %w", err)
	}
	return path, nil
}

func recordRow(r *models.Record) []string {
	return []string{
		r.CapturedAt.Format("2006-01-02 15:04:05"),
		r.PriceText,
		floatCol(r.Price),
		floatCol(r.PricePerM2()),
		r.District,
		r.Neighborhood,
		r.LocationText,
		strCol(r.Rooms),
		strCol(r.Area),
		floatCol(r.AreaM2()),
		strCol(r.Floor),
		r.DetailsText,
		r.URL,
	}
}

// floatCol renders a nullable number; absent stays an empty cell, never a 0.
func floatCol(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func strCol(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
