package service

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerdesk/internal/domain"
	"ledgerdesk/internal/storage"
)

func seededWidgetService(t *testing.T) (*WidgetService, []*domain.Widget) {
	t.Helper()
	store := storage.NewMemoryStore()
	catalog, err := storage.Seed(store)
	require.NoError(t, err)
	return NewWidgetService(store, domain.DefaultLimits(), catalog), catalog
}

func TestWidgetService_CRUD(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewWidgetService(store, domain.DefaultLimits(), nil)

	widget := domain.NewWidget("Anvil")
	widget.UnitPrice = decimal.RequireFromString("19.99")
	require.NoError(t, svc.Create(widget))

	retrieved, err := svc.Get(widget.ID)
	assert.NoError(t, err)
	assert.Equal(t, "$19.99", retrieved.PriceTag())

	updated, err := svc.Update(widget.ID, map[string]interface{}{
		"quantity": int64(4),
	})
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("79.96").Equal(updated.StockValue()))

	assert.NoError(t, svc.Delete(widget.ID))
	_, err = svc.Get(widget.ID)
	assert.Error(t, err)
}

func TestWidgetService_Validate(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewWidgetService(store, domain.DefaultLimits(), nil)

	widget := domain.NewWidget("Anvil")
	require.NoError(t, svc.Create(widget))

	// Zero price fails validation but the record was stored anyway.
	violations, err := svc.Validate(widget.ID)
	assert.NoError(t, err)
	assert.False(t, violations.OK())
	assert.Equal(t, "unitPrice", violations[0].Field)
}

func TestWidgetService_PickNext(t *testing.T) {
	svc, catalog := seededWidgetService(t)

	_, ok := svc.Picked()
	assert.False(t, ok)

	first := svc.PickNext()
	require.NotNil(t, first)
	assert.Equal(t, "Alpha", first.Name)

	assert.Equal(t, "Beta", svc.PickNext().Name)
	assert.Equal(t, "Gamma", svc.PickNext().Name)
	assert.Equal(t, "Alpha", svc.PickNext().Name)

	picked, ok := svc.Picked()
	assert.True(t, ok)
	assert.Same(t, catalog[0], picked)
}

func TestWidgetService_PickNextEmptyCatalog(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewWidgetService(store, domain.DefaultLimits(), nil)

	assert.Nil(t, svc.PickNext())
	_, ok := svc.Picked()
	assert.False(t, ok)
	assert.Equal(t, 0, svc.CatalogSize())
}

func TestWidgetService_PickNextConcurrent(t *testing.T) {
	svc, _ := seededWidgetService(t)

	// 30 concurrent advances over a 3-widget catalog: ten full laps,
	// so the cursor must land back on the last index regardless of
	// interleaving, and every advance must return a widget.
	const calls = 30
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NotNil(t, svc.PickNext())
		}()
	}
	wg.Wait()

	picked, ok := svc.Picked()
	assert.True(t, ok)
	assert.Equal(t, "Gamma", picked.Name)
}
