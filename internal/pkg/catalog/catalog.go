package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Product is a purchasable item. Price is in minor units (cents).
type Product struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Price int64  `yaml:"price" json:"price"`
}

// Catalog is an immutable product list built once at startup.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// Default returns the built-in product list.
func Default() *Catalog {
	c, _ := New([]Product{
		{ID: "prod_1", Name: "T-shirt", Price: 1500},
		{ID: "prod_2", Name: "Mug", Price: 700},
		{ID: "prod_3", Name: "Sticker Pack", Price: 300},
	})
	return c
}

// New validates products and builds a catalog. IDs must be unique and
// prices positive.
func New(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, errors.New("catalog is empty")
	}
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	for _, p := range products {
		p.ID = strings.TrimSpace(p.ID)
		p.Name = strings.TrimSpace(p.Name)
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("product %q: id and name are required", p.ID)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("product %q: price must be positive", p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %q: duplicate id", p.ID)
		}
		c.byID[p.ID] = p
		c.products = append(c.products, p)
	}
	return c, nil
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// LoadFile reads a YAML catalog of the form
//
//	products:
//	  - {id: prod_1, name: T-shirt, price: 1500}
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return New(f.Products)
}

// Load returns the catalog from path, or the default one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Find looks up a product by id.
func (c *Catalog) Find(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns a copy of the product list in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}
