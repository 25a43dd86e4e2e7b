package reservation

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNoNights      = errors.New("stay must cover at least one night")
)

type PriceCalculator interface {
	TotalPrice(pricePerNight decimal.Decimal, stay Stay) (decimal.Decimal, error)
}

// NightlyPriceCalculator charges the package rate once per night, in exact decimal arithmetic.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) TotalPrice(pricePerNight decimal.Decimal, stay Stay) (decimal.Decimal, error) {
	if pricePerNight.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	nights := stay.Nights()
	if nights < 1 {
		return decimal.Zero, ErrNoNights
	}
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights))), nil
}
