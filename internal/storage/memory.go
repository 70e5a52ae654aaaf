package storage

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"ledgerdesk/internal/domain"
)

type MemoryStore struct {
	mu          sync.RWMutex
	enterprises map[string]*domain.Enterprise
	widgets     map[string]*domain.Widget
	order       []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		enterprises: make(map[string]*domain.Enterprise),
		widgets:     make(map[string]*domain.Widget),
	}
}

// Enterprise repository implementation
func (ms *MemoryStore) CreateEnterprise(enterprise *domain.Enterprise) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.enterprises[enterprise.ID]; exists {
		return fmt.Errorf("enterprise with ID %s already exists", enterprise.ID)
	}

	ms.enterprises[enterprise.ID] = enterprise
	return nil
}

func (ms *MemoryStore) UpdateEnterprise(id string, updates map[string]interface{}) (*domain.Enterprise, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	enterprise, exists := ms.enterprises[id]
	if !exists {
		return nil, fmt.Errorf("enterprise with ID %s not found", id)
	}

	// Update a copy so readers holding the old pointer see a
	// consistent record.
	updated := *enterprise

	if name, ok := updates["name"].(string); ok {
		updated.Name = name
	}
	if alias, ok := updates["contactAlias"].(string); ok {
		updated.ContactAlias = alias
	}
	if rate, ok := updates["hourlyRate"].(decimal.Decimal); ok {
		updated.HourlyRate = rate
	}
	if hours, ok := updates["hoursBilled"].(int64); ok {
		updated.HoursBilled = hours
	}
	if expenses, ok := updates["expenses"].(decimal.Decimal); ok {
		updated.Expenses = expenses
	}
	updated.Touch()

	ms.enterprises[id] = &updated
	return &updated, nil
}

func (ms *MemoryStore) GetEnterprise(id string) (*domain.Enterprise, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	enterprise, exists := ms.enterprises[id]
	if !exists {
		return nil, fmt.Errorf("enterprise with ID %s not found", id)
	}

	return enterprise, nil
}

func (ms *MemoryStore) ListEnterprises(filter domain.EnterpriseFilter) ([]*domain.Enterprise, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var result []*domain.Enterprise

	for _, enterprise := range ms.enterprises {
		if filter.Name != nil && enterprise.Name != *filter.Name {
			continue
		}
		result = append(result, enterprise)
	}

	return result, nil
}

func (ms *MemoryStore) DeleteEnterprise(id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.enterprises[id]; !exists {
		return fmt.Errorf("enterprise with ID %s not found", id)
	}

	delete(ms.enterprises, id)
	return nil
}

// Widget repository implementation
func (ms *MemoryStore) CreateWidget(widget *domain.Widget) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.widgets[widget.ID]; exists {
		return fmt.Errorf("widget with ID %s already exists", widget.ID)
	}

	ms.widgets[widget.ID] = widget
	ms.order = append(ms.order, widget.ID)
	return nil
}

func (ms *MemoryStore) UpdateWidget(id string, updates map[string]interface{}) (*domain.Widget, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	widget, exists := ms.widgets[id]
	if !exists {
		return nil, fmt.Errorf("widget with ID %s not found", id)
	}

	updated := *widget

	if name, ok := updates["name"].(string); ok {
		updated.Name = name
	}
	if sku, ok := updates["sku"].(string); ok {
		updated.SKU = sku
	}
	if price, ok := updates["unitPrice"].(decimal.Decimal); ok {
		updated.UnitPrice = price
	}
	if quantity, ok := updates["quantity"].(int64); ok {
		updated.Quantity = quantity
	}
	updated.Touch()

	ms.widgets[id] = &updated
	return &updated, nil
}

func (ms *MemoryStore) GetWidget(id string) (*domain.Widget, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	widget, exists := ms.widgets[id]
	if !exists {
		return nil, fmt.Errorf("widget with ID %s not found", id)
	}

	return widget, nil
}

// ListWidgets returns widgets in insertion order; the picker depends
// on a stable, position-significant sequence.
func (ms *MemoryStore) ListWidgets(filter domain.WidgetFilter) ([]*domain.Widget, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var result []*domain.Widget

	for _, id := range ms.order {
		widget, exists := ms.widgets[id]
		if !exists {
			continue
		}
		if filter.SKU != nil && widget.SKU != *filter.SKU {
			continue
		}
		if filter.InStock != nil && (widget.Quantity > 0) != *filter.InStock {
			continue
		}
		result = append(result, widget)
	}

	return result, nil
}

func (ms *MemoryStore) DeleteWidget(id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.widgets[id]; !exists {
		return fmt.Errorf("widget with ID %s not found", id)
	}

	delete(ms.widgets, id)
	for i, existing := range ms.order {
		if existing == id {
			ms.order = append(ms.order[:i], ms.order[i+1:]...)
			break
		}
	}
	return nil
}
