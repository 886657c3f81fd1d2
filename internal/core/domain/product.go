package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownProduct = errors.New("unknown product")

// Product identifies one spot format sold in a campaign.
type Product string

const (
	Spots5  Product = "spots5"
	Spots15 Product = "spots15"
	Spots30 Product = "spots30"
	Spots60 Product = "spots60"
	Test60  Product = "test60"
)

// Products lists every product in grid order.
var Products = []Product{Spots30, Spots5, Spots15, Spots60, Test60}

// Label returns the human readable name used in grids and exports.
func (p Product) Label() string {
	switch p {
	case Spots5:
		return `Spots 5"`
	case Spots15:
		return `Spots 15"`
	case Spots30:
		return `Spots 30"`
	case Spots60:
		return `Spots 60"`
	case Test60:
		return `Test. 60"`
	default:
		return string(p)
	}
}

// ParseProduct accepts a product code in any letter case.
func ParseProduct(s string) (Product, error) {
	p := Product(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Products {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProduct, s)
}

// Quantities maps each product to a number of contracted units.
type Quantities map[Product]int

// Total sums every product.
func (q Quantities) Total() int {
	var n int
	for _, v := range q {
		n += v
	}
	return n
}

// Active returns the products with a positive quantity in grid order.
func (q Quantities) Active() []Product {
	out := make([]Product, 0, len(Products))
	for _, p := range Products {
		if q[p] > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Equal reports whether both mappings hold the same value for every product.
// Missing products count as zero.
func (q Quantities) Equal(other Quantities) bool {
	for _, p := range Products {
		if q[p] != other[p] {
			return false
		}
	}
	return true
}
