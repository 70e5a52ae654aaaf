package storage

import (
	"github.com/shopspring/decimal"

	"ledgerdesk/internal/domain"
)

// SeedWidgets returns the starter catalog. Order is significant: the
// picker walks it by position, starting with Alpha.
func SeedWidgets() []*domain.Widget {
	alpha := domain.NewWidget("Alpha")
	alpha.SKU = "WGT-001"
	alpha.UnitPrice = decimal.RequireFromString("1234.56")
	alpha.Quantity = 12

	beta := domain.NewWidget("Beta")
	beta.SKU = "WGT-002"
	beta.UnitPrice = decimal.RequireFromString("89.99")
	beta.Quantity = 40

	gamma := domain.NewWidget("Gamma")
	gamma.UnitPrice = decimal.RequireFromString("0.01")
	gamma.Quantity = 0

	return []*domain.Widget{alpha, beta, gamma}
}

// Seed loads the starter catalog into the store and returns it in
// insertion order.
func Seed(store *MemoryStore) ([]*domain.Widget, error) {
	widgets := SeedWidgets()
	for _, widget := range widgets {
		if err := store.CreateWidget(widget); err != nil {
			return nil, err
		}
	}
	return widgets, nil
}
