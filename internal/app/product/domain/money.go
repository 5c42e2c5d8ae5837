package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// Price bounds of the NUMERIC(14,2) column the catalog has always used.
const (
	priceScale         = 2
	priceIntegerDigits = 12
)

var (
	ratZero    = big.NewRat(0, 1)
	ratHundred = big.NewRat(100, 1)
	priceLimit = new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(priceIntegerDigits), nil))
)

// Money represents a price amount with exact decimal arithmetic.
// It uses big.Rat internally and is immutable.
type Money struct {
	amount *big.Rat
}

// NewMoney creates Money from numerator and denominator. NewMoney(1999, 100) is 19.99.
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{amount: big.NewRat(numerator, denominator)}
}

// NewMoneyFromDecimal parses a decimal string such as "19.99".
func NewMoneyFromDecimal(decimal string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(strings.TrimSpace(decimal)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, decimal)
	}
	return &Money{amount: rat}, nil
}

// NewMoneyFromRat copies rat. A nil rat yields nil.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return nil
	}
	return &Money{amount: new(big.Rat).Set(rat)}
}

// IsNegative returns true if the amount is below zero.
func (m *Money) IsNegative() bool {
	return m.amount.Cmp(ratZero) < 0
}

// Equals compares two possibly nil amounts.
func (m *Money) Equals(other *Money) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	return m.amount.Cmp(other.amount) == 0
}

// Rat returns a copy of the internal big.Rat.
func (m *Money) Rat() *big.Rat {
	if m == nil {
		return nil
	}
	return new(big.Rat).Set(m.amount)
}

// String renders the amount with two decimals, e.g. "19.90".
func (m *Money) String() string {
	return m.amount.FloatString(priceScale)
}

// hasCents reports whether the amount needs no more than two decimals.
func (m *Money) hasCents() bool {
	return new(big.Rat).Mul(m.amount, ratHundred).IsInt()
}

func validatePrice(price *Money) error {
	if price == nil {
		return nil
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if !price.hasCents() || price.amount.Cmp(priceLimit) >= 0 {
		return ErrInvalidPrice
	}
	return nil
}
