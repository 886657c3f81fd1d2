package distribution

import (
	"math"

	"spotplan/internal/core/domain"
)

// Impact weights per product, as multiples of the campaign PMM.
var impactFactors = map[domain.Product]float64{
	domain.Spots30: 1,
	domain.Spots60: 2,
	domain.Test60:  2,
	domain.Spots15: 1.0 / 2,
	domain.Spots5:  1.0 / 6,
}

// Impact scores the reach of quantities with weight as the value of one
// 30 second spot, rounded to the nearest integer.
func Impact(quantities domain.Quantities, weight float64) int {
	var sum float64
	for _, p := range domain.Products {
		sum += float64(quantities[p]) * impactFactors[p] * weight
	}
	return int(math.Round(sum))
}
