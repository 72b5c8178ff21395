// Package credits implements the credit ledger: the metered balance that
// gates review submissions, the purchase catalog, and failure compensation.
package credits

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrCatalogNotFound is returned when no catalog file exists; callers
	// get the built-in packages instead.
	ErrCatalogNotFound = errors.New("credit catalog file not found")

	// ErrInvalidPurchase marks a purchase request that names an unknown
	// bundle or misquotes its price.
	ErrInvalidPurchase = errors.New("invalid credit purchase")
)

// Package is one purchasable credit bundle.
type Package struct {
	Credits int     `yaml:"credits"`
	Price   float64 `yaml:"price"`
}

// Catalog is the set of purchasable bundles. Purchase requests must name an
// exact bundle; prices are validated against it with a one-cent tolerance.
type Catalog struct {
	Packages []Package `yaml:"packages"`
}

// DefaultCatalog returns the built-in bundles (100 credits = 50.0, scaled).
func DefaultCatalog() *Catalog {
	return &Catalog{
		Packages: []Package{
			{Credits: 100, Price: 50.0},
			{Credits: 200, Price: 100.0},
			{Credits: 500, Price: 250.0},
		},
	}
}

// LoadCatalog reads the bundle catalog from a yaml file. A missing file
// yields the default catalog and ErrCatalogNotFound so the caller can log it.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), ErrCatalogNotFound
		}
		return nil, fmt.Errorf("failed to read credit catalog: %w", err)
	}

	catalog := &Catalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse credit catalog: %w", err)
	}
	if len(catalog.Packages) == 0 {
		return nil, fmt.Errorf("credit catalog %q has no packages", path)
	}
	for _, p := range catalog.Packages {
		if p.Credits <= 0 || p.Price < 0 {
			return nil, fmt.Errorf("invalid catalog package: %d credits for %.2f", p.Credits, p.Price)
		}
	}
	return catalog, nil
}

// Validate checks that the requested bundle exists and the quoted price
// matches it within one cent.
func (c *Catalog) Validate(creditAmount int, price float64) error {
	for _, p := range c.Packages {
		if p.Credits != creditAmount {
			continue
		}
		if math.Abs(price-p.Price) > 0.01 {
			return fmt.Errorf("%w: %d credits cost %.2f, got %.2f", ErrInvalidPurchase, creditAmount, p.Price, price)
		}
		return nil
	}
	return fmt.Errorf("%w: no package with %d credits", ErrInvalidPurchase, creditAmount)
}
