// Package catalog loads the static coffee shop catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"roast/internal/model"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed shops.yaml
var defaultCatalog []byte

// record is the on-disk shape of one shop.
type record struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name"`
	Neighborhood  string            `yaml:"neighborhood"`
	Address       string            `yaml:"address"`
	Rating        float64           `yaml:"rating"`
	ReviewCount   int               `yaml:"review_count"`
	ImageURL      string            `yaml:"image_url"`
	Website       *string           `yaml:"website"`
	Description   *string           `yaml:"description"`
	DrinkOfTheDay *string           `yaml:"drink_of_the_day"`
	Matcha        *bool             `yaml:"matcha"`
	Hours         map[string]string `yaml:"hours"`
}

type file struct {
	Shops []record `yaml:"shops"`
}

// Default returns the catalog embedded in the binary.
func Default() ([]model.CoffeeShop, error) {
	shops, err := parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return shops, nil
}

// Load reads every file matched by patterns and concatenates their shops.
// Patterns are taken in order; the files one pattern matches are read in
// lexical order. With no patterns it returns the embedded catalog.
func Load(patterns []string) ([]model.CoffeeShop, error) {
	if len(patterns) == 0 {
		return Default()
	}

	var shops []model.CoffeeShop
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("catalog pattern %q matched no files", pattern)
		}
		slices.Sort(matches)
		for _, path := range matches {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
			}
			parsed, err := parse(data)
			if err != nil {
				return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
			}
			shops = append(shops, parsed...)
		}
	}
	return shops, nil
}

func parse(data []byte) ([]model.CoffeeShop, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	shops := make([]model.CoffeeShop, 0, len(f.Shops))
	for _, r := range f.Shops {
		hours, err := parseHours(r.Hours)
		if err != nil {
			return nil, fmt.Errorf("shop %q: %w", r.ID, err)
		}
		shops = append(shops, model.CoffeeShop{
			ID:            r.ID,
			Name:          r.Name,
			Neighborhood:  r.Neighborhood,
			Address:       r.Address,
			Rating:        r.Rating,
			ReviewCount:   r.ReviewCount,
			ImageURL:      r.ImageURL,
			Website:       r.Website,
			Description:   r.Description,
			DrinkOfTheDay: r.DrinkOfTheDay,
			HasMatcha:     r.Matcha,
			Hours:         hours,
		})
	}
	return shops, nil
}

func parseHours(raw map[string]string) (model.WeeklyHours, error) {
	if raw == nil {
		return nil, nil
	}
	hours := make(model.WeeklyHours, len(raw))
	for day, h := range raw {
		wd, ok := parseWeekday(day)
		if !ok {
			return nil, fmt.Errorf("unknown day %q in hours", day)
		}
		hours[wd] = h
	}
	return hours, nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, true
		}
	}
	return 0, false
}
