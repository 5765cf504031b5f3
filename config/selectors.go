package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Selectors holds the ordered candidate lists per semantic target. Order is
// preference: the first selector that yields elements wins, so the specific
// data-testid variants come before the loose class-substring ones.
type Selectors struct {
	Cards    []string `yaml:"cards"`
	Price    []string `yaml:"price"`
	Location []string `yaml:"location"`
	Details  []string `yaml:"details"`
	Link     []string `yaml:"link"`
}

// DefaultSelectors returns the built-in candidate lists for emlakjet.com.
func DefaultSelectors() *Selectors {
	return &Selectors{
		Cards: []string{
			"div[data-testid='listing-card']",
			"article[data-testid='listing-item']",
			"div[class*='ListingCard']",
			"div[class*='PropertyCard']",
			"div[class*='listing']",
			"article[class*='property']",
			"div[class*='card']",
			"article",
			"li[class*='item']",
		},
		Price: []string{
			"[data-testid='price']",
			".price",
			"[class*='price']",
			"[class*='Price']",
		},
		Location: []string{
			"[data-testid='location']",
			".location",
			"[class*='location']",
			"[class*='address']",
		},
		Details: []string{
			"ul",
			"[class*='detail']",
			"[class*='feature']",
		},
		Link: []string{
			"a",
		},
	}
}

// LoadSelectors reads candidate lists from a YAML file, falling back to the
// defaults when the file does not exist. Lists omitted from the file keep
// their default value, so an override file only needs the targets that
// actually changed on the site.
func LoadSelectors(path string) (*Selectors, error) {
	sel := DefaultSelectors()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sel, nil
		}
		return nil, fmt.Errorf("read selectors %s: %w", path, err)
	}

	var override Selectors
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse selectors %s: %w", path, err)
	}

	if len(override.Cards) > 0 {
		sel.Cards = override.Cards
	}
	if len(override.Price) > 0 {
		sel.Price = override.Price
	}
	if len(override.Location) > 0 {
		sel.Location = override.Location
	}
	if len(override.Details) > 0 {
		sel.Details = override.Details
	}
	if len(override.Link) > 0 {
		sel.Link = override.Link
	}

	return sel, nil
}
