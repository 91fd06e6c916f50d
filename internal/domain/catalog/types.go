package catalog

import "errors"

var ErrInvalidProduct = errors.New("catalog: invalid product")

type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Price        int64  `json:"price"` // whole naira
	Image        string `json:"image"`
	Benefits     string `json:"benefits,omitempty"`
	Ingredients  string `json:"ingredients,omitempty"`
	HowToUse     string `json:"howToUse,omitempty"`
	InStock      *bool  `json:"inStock,omitempty"`
	CountInStock *int   `json:"countInStock,omitempty"`
}

// Available reports whether the product may be added to a cart.
// A non-positive stock count always wins over the inStock flag.
func (p Product) Available() bool {
	if p.CountInStock != nil && *p.CountInStock <= 0 {
		return false
	}
	if p.InStock != nil {
		return *p.InStock
	}
	return true
}

// Stock returns the stock count, treating an absent count as zero.
func (p Product) Stock() int {
	if p.CountInStock == nil {
		return 0
	}
	return *p.CountInStock
}

// Input is the admin payload for creating a product. The server assigns the id.
type Input struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Price        int64  `json:"price"`
	Image        string `json:"image"`
	Benefits     string `json:"benefits,omitempty"`
	Ingredients  string `json:"ingredients,omitempty"`
	HowToUse     string `json:"howToUse,omitempty"`
	InStock      *bool  `json:"inStock,omitempty"`
	CountInStock *int   `json:"countInStock,omitempty"`
}

func (in Input) Validate() error {
	if in.Name == "" {
		return errors.Join(ErrInvalidProduct, errors.New("name is required"))
	}
	if in.Price < 0 {
		return errors.Join(ErrInvalidProduct, errors.New("price must not be negative"))
	}
	if in.CountInStock != nil && *in.CountInStock < 0 {
		return errors.Join(ErrInvalidProduct, errors.New("stock count must not be negative"))
	}
	return nil
}

// Validate checks an existing product before it is sent for update.
func (p Product) Validate() error {
	if p.ID == "" {
		return errors.Join(ErrInvalidProduct, errors.New("id is required"))
	}
	return Input{Name: p.Name, Price: p.Price, CountInStock: p.CountInStock}.Validate()
}

func Bool(v bool) *bool { return &v }

func Int(v int) *int { return &v }
