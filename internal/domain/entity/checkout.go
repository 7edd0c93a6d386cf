package entity

import (
	"github.com/shopspring/decimal"
)

var minorUnitFactor = decimal.NewFromInt(100)

// ToMinorUnits converts a price to the smallest currency unit (cents), rounded half away from zero.
func ToMinorUnits(price decimal.Decimal) int64 {
	return price.Mul(minorUnitFactor).Round(0).IntPart()
}

// CartLine is a cart item resolved against live catalog data.
type CartLine struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

// Subtotal is the live price × quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartView is the resolved cart with its total.
type CartView struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// NewCartView resolves totals for the given lines.
func NewCartView(lines []CartLine) *CartView {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}

	if lines == nil {
		lines = []CartLine{}
	}

	return &CartView{Lines: lines, Total: total}
}

// Snapshot freezes every line into order lines.
func (v *CartView) Snapshot() []OrderLine {
	lines := make([]OrderLine, 0, len(v.Lines))
	for _, line := range v.Lines {
		lines = append(lines, SnapshotLine(line.Product, line.Quantity))
	}

	return lines
}

// IsEmpty reports whether no lines resolved.
func (v *CartView) IsEmpty() bool {
	return len(v.Lines) == 0
}
