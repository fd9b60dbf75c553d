package earnings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangePercentage(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"increase", 150, 100, 50},
		{"decrease", 50, 100, -50},
		{"unchanged", 100, 100, 0},
		{"from zero", 42, 0, 100},
		{"both zero", 0, 0, 0},
		{"negative previous", -50, -100, -50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ChangePercentage(tc.current, tc.previous), 1e-9)
		})
	}
}

func TestCompare(t *testing.T) {
	current := Stats{TotalRevenue: 300, GrossIncome: 120, Tips: 55, Hours: 8, Sales: 300, TipOut: 5}
	previous := Stats{TotalRevenue: 200, GrossIncome: 120, Tips: 110, Hours: 4, Sales: 0, TipOut: 10}

	c := Compare(current, previous)

	assert.InDelta(t, 50, c.TotalRevenue, 1e-9)
	assert.InDelta(t, 0, c.GrossIncome, 1e-9)
	assert.InDelta(t, -50, c.Tips, 1e-9)
	assert.InDelta(t, 100, c.Hours, 1e-9)
	assert.InDelta(t, 100, c.Sales, 1e-9)
	assert.InDelta(t, -50, c.TipOut, 1e-9)
	assert.InDelta(t, 0, c.Other, 1e-9)
}
