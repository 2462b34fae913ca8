package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConverterDisabled(t *testing.T) {
	c := NewConverter("BDT", "", decimal.Zero)
	assert.False(t, c.Enabled())
	assert.Equal(t, "BDT", c.DisplayCode())

	amount := decimal.NewFromInt(5000)
	assert.True(t, c.Display(amount).Equal(amount))
}

func TestConverterDisplay(t *testing.T) {
	rate, _ := decimal.NewFromString("0.0091")
	c := NewConverter("BDT", "USD", rate)
	assert.True(t, c.Enabled())
	assert.Equal(t, "USD", c.DisplayCode())

	got := c.Display(decimal.NewFromInt(5000))
	want, _ := decimal.NewFromString("45.50")
	assert.True(t, got.Equal(want), "got %s", got)
}

func TestConverterSameCode(t *testing.T) {
	c := NewConverter("BDT", "BDT", decimal.NewFromInt(1))
	assert.False(t, c.Enabled())
}
