package service

import (
	"math"

	"burgerhouse/internal/domain"
)

// DiscountRate is the fixed reduction applied to every menu's member-price
// sum. It is not configurable per menu or per request.
const DiscountRate = 0.10

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// memberTotal sums the prices of the menu's current members.
func memberTotal(burgers []domain.Burger, complements []domain.Complement) float64 {
	var total float64
	for _, b := range burgers {
		total += b.Price
	}
	for _, c := range complements {
		total += c.Price
	}
	return total
}

// menuPrice applies the discount to a member-price sum, rounded to cents.
func menuPrice(total float64) float64 {
	return round2(total * (1 - DiscountRate))
}
