// Package currency converts stored amounts into a configured display
// currency. Conversion is presentation-only: stored amounts are never
// touched, and a zero/invalid rate disables the toggle.
package currency

import "github.com/shopspring/decimal"

// Converter converts base-currency amounts for display
type Converter struct {
	baseCode    string
	displayCode string
	rate        decimal.Decimal
}

// NewConverter creates a converter from the base currency to a display
// currency at a fixed configured rate
func NewConverter(baseCode, displayCode string, rate decimal.Decimal) *Converter {
	return &Converter{
		baseCode:    baseCode,
		displayCode: displayCode,
		rate:        rate,
	}
}

// Enabled reports whether display conversion is configured
func (c *Converter) Enabled() bool {
	return c.displayCode != "" && c.displayCode != c.baseCode && c.rate.IsPositive()
}

// BaseCode returns the base (storage) currency code
func (c *Converter) BaseCode() string {
	return c.baseCode
}

// DisplayCode returns the active display currency code
func (c *Converter) DisplayCode() string {
	if c.Enabled() {
		return c.displayCode
	}
	return c.baseCode
}

// Display converts a stored amount into the display currency, rounded to
// two decimal places. Amounts pass through unchanged when the toggle is off.
func (c *Converter) Display(amount decimal.Decimal) decimal.Decimal {
	if !c.Enabled() {
		return amount
	}
	return amount.Mul(c.rate).Round(2)
}
