package console

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ledgerdesk/internal/domain"
	"ledgerdesk/internal/search"
	"ledgerdesk/internal/service"
	"ledgerdesk/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := storage.NewMemoryStore()
	catalog, err := storage.Seed(store)
	require.NoError(t, err)

	limits := domain.DefaultLimits()
	enterprises := service.NewEnterpriseService(store, limits)
	widgets := service.NewWidgetService(store, limits, catalog)
	searcher := search.NewCatalogSearch(store, store)

	return NewServer(enterprises, widgets, searcher, zap.NewNop())
}

func mustMarshal(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestServer_EnterpriseCommands(t *testing.T) {
	server := newTestServer(t)

	// Create
	result, err := server.HandleCommand("ledger.enterprise.create", mustMarshal(t, CreateEnterpriseParams{
		Name:        "Northwind Consulting",
		HourlyRate:  "125.50",
		HoursBilled: 40,
		Expenses:    "1000",
	}))
	require.NoError(t, err)
	view, ok := result.(*EnterpriseView)
	require.True(t, ok)
	assert.Equal(t, "Northwind Consulting", view.DisplayName)
	assert.Equal(t, "$5,020.00", view.Revenue)
	assert.Equal(t, "$4,020.00", view.Balance)

	// Get
	result, err = server.HandleCommand("ledger.enterprise.get", mustMarshal(t, GetByIDParams{ID: view.ID}))
	assert.NoError(t, err)
	assert.Equal(t, view.ID, result.(*EnterpriseView).ID)

	// Update moves the derived values with the inputs.
	hours := int64(41)
	result, err = server.HandleCommand("ledger.enterprise.update", mustMarshal(t, UpdateEnterpriseParams{
		ID:          view.ID,
		HoursBilled: &hours,
	}))
	require.NoError(t, err)
	assert.Equal(t, "$5,145.50", result.(*EnterpriseView).Revenue)

	// Validate
	result, err = server.HandleCommand("ledger.enterprise.validate", mustMarshal(t, GetByIDParams{ID: view.ID}))
	require.NoError(t, err)
	assert.True(t, result.(*ValidationView).Valid)

	// Delete
	_, err = server.HandleCommand("ledger.enterprise.delete", mustMarshal(t, GetByIDParams{ID: view.ID}))
	assert.NoError(t, err)
	_, err = server.HandleCommand("ledger.enterprise.get", mustMarshal(t, GetByIDParams{ID: view.ID}))
	assert.Error(t, err)
}

func TestServer_EnterpriseValidationSurfacesViolations(t *testing.T) {
	server := newTestServer(t)

	// Assignment accepts the out-of-range rate; validation reports it.
	result, err := server.HandleCommand("ledger.enterprise.create", mustMarshal(t, CreateEnterpriseParams{
		Name:       "",
		HourlyRate: "10000",
	}))
	require.NoError(t, err)
	id := result.(*EnterpriseView).ID

	result, err = server.HandleCommand("ledger.enterprise.validate", mustMarshal(t, GetByIDParams{ID: id}))
	require.NoError(t, err)
	validation := result.(*ValidationView)
	assert.False(t, validation.Valid)
	assert.Len(t, validation.Violations, 2)
}

func TestServer_WidgetCommands(t *testing.T) {
	server := newTestServer(t)

	result, err := server.HandleCommand("ledger.widget.create", mustMarshal(t, CreateWidgetParams{
		Name:      "Widget Name",
		SKU:       "SKU-001",
		UnitPrice: "1234.56",
		Quantity:  2,
	}))
	require.NoError(t, err)
	view := result.(*WidgetView)
	assert.Equal(t, "Widget Name (SKU-001)", view.DisplayName)
	assert.Equal(t, "$1,234.56", view.PriceTag)
	assert.Equal(t, "$2,469.12", view.StockValue)

	// List includes the three seeded widgets plus the new one.
	result, err = server.HandleCommand("ledger.widget.list", nil)
	require.NoError(t, err)
	assert.Len(t, result.([]*WidgetView), 4)

	result, err = server.HandleCommand("ledger.widget.validate", mustMarshal(t, GetByIDParams{ID: view.ID}))
	require.NoError(t, err)
	assert.True(t, result.(*ValidationView).Valid)
}

func TestServer_WidgetPickCycles(t *testing.T) {
	server := newTestServer(t)

	// Nothing picked before the first advance.
	result, err := server.HandleCommand("ledger.widget.picked", nil)
	require.NoError(t, err)
	_, isView := result.(*WidgetView)
	assert.False(t, isView)

	names := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		result, err = server.HandleCommand("ledger.widget.pick", nil)
		require.NoError(t, err)
		names = append(names, result.(*WidgetView).DisplayName)
	}

	// Three seeded widgets, so the fourth pick wraps to Alpha.
	assert.Equal(t, names[0], names[3])
	assert.Contains(t, names[0], "Alpha")
}

func TestServer_CatalogSearch(t *testing.T) {
	server := newTestServer(t)

	result, err := server.HandleCommand("ledger.catalog.search", mustMarshal(t, SearchParams{
		Query: "alpha",
	}))
	require.NoError(t, err)
	results := result.([]*search.Result)
	require.Len(t, results, 1)
	assert.Equal(t, "widget", results[0].Kind)
}

func TestServer_UnknownMethod(t *testing.T) {
	server := newTestServer(t)

	_, err := server.HandleCommand("ledger.nope", nil)
	assert.Error(t, err)
}
