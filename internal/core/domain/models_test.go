package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTotalFor(t *testing.T) {
	cases := []struct {
		name  string
		price decimal.Decimal
		qty   int64
		want  string
	}{
		{"whole price", decimal.NewFromInt(10), 30, "300"},
		{"fractional price", decimal.NewFromFloat(25.50), 4, "102"},
		{"fractional result", decimal.NewFromFloat(14.75), 3, "44.25"},
		{"single ton", decimal.NewFromFloat(310.00), 1, "310"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &CarbonCredit{PricePerTon: tc.price}
			got := c.TotalFor(tc.qty)
			if got.String() != tc.want {
				t.Errorf("TotalFor(%d) = %s, want %s", tc.qty, got, tc.want)
			}
		})
	}
}

func TestExhausted(t *testing.T) {
	c := &CarbonCredit{TotalIssued: 100, QuantityAvailable: 1}
	if c.Exhausted() {
		t.Error("credit with stock must not be exhausted")
	}
	c.QuantityAvailable = 0
	if !c.Exhausted() {
		t.Error("credit with zero stock must be exhausted")
	}
}
