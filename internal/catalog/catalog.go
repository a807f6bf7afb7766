// Package catalog holds the static destination data used to enrich and
// substitute flight deals.
package catalog

import (
	_ "embed"
	"fmt"

	"travelease/pkg/model"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Cities       map[string]string `yaml:"cities"`
	Images       map[string]string `yaml:"images"`
	DefaultImage string            `yaml:"default_image"`
	DemoDeals    []Deal            `yaml:"demo_deals"`
}

type Deal struct {
	Destination   string `yaml:"destination"`
	CityName      string `yaml:"city_name"`
	ImageURL      string `yaml:"image_url"`
	Price         string `yaml:"price"`
	Currency      string `yaml:"currency"`
	DepartureDate string `yaml:"departure_date"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if c.DefaultImage == "" {
		return nil, fmt.Errorf("catalog: default_image is required")
	}
	for i, d := range c.DemoDeals {
		if d.Destination == "" || d.Price == "" {
			return nil, fmt.Errorf("catalog: demo deal %d needs destination and price", i)
		}
	}
	return &c, nil
}

func (c *Catalog) CityName(airport string) (string, bool) {
	name, ok := c.Cities[airport]
	return name, ok
}

func (c *Catalog) ImageFor(city string) string {
	if img, ok := c.Images[city]; ok {
		return img
	}
	return c.DefaultImage
}

// Deals returns a fresh copy of the demo deals.
func (c *Catalog) Deals() []model.FlightDeal {
	deals := make([]model.FlightDeal, 0, len(c.DemoDeals))
	for _, d := range c.DemoDeals {
		deals = append(deals, model.FlightDeal{
			Destination:   d.Destination,
			CityName:      d.CityName,
			ImageURL:      d.ImageURL,
			Price:         d.Price,
			Currency:      d.Currency,
			DepartureDate: d.DepartureDate,
		})
	}
	return deals
}
