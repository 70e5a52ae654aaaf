package service

import (
	"sync"

	"ledgerdesk/internal/domain"
)

type WidgetService struct {
	storage WidgetStorage
	limits  domain.Limits

	// The picker advance is a read-modify-write; the mutex keeps it
	// atomic when the console and other callers share the service.
	mu     sync.Mutex
	picker *domain.Picker
}

type WidgetStorage interface {
	CreateWidget(widget *domain.Widget) error
	UpdateWidget(id string, updates map[string]interface{}) (*domain.Widget, error)
	GetWidget(id string) (*domain.Widget, error)
	ListWidgets(filter domain.WidgetFilter) ([]*domain.Widget, error)
	DeleteWidget(id string) error
}

func NewWidgetService(storage WidgetStorage, limits domain.Limits, catalog []*domain.Widget) *WidgetService {
	return &WidgetService{
		storage: storage,
		limits:  limits,
		picker:  domain.NewPicker(catalog),
	}
}

func (s *WidgetService) Create(widget *domain.Widget) error {
	return s.storage.CreateWidget(widget)
}

func (s *WidgetService) Update(id string, updates map[string]interface{}) (*domain.Widget, error) {
	return s.storage.UpdateWidget(id, updates)
}

func (s *WidgetService) Get(id string) (*domain.Widget, error) {
	return s.storage.GetWidget(id)
}

func (s *WidgetService) List(filter domain.WidgetFilter) ([]*domain.Widget, error) {
	return s.storage.ListWidgets(filter)
}

func (s *WidgetService) Delete(id string) error {
	return s.storage.DeleteWidget(id)
}

// Validate reports every rule violation on the stored widget, checked
// against the configured limits.
func (s *WidgetService) Validate(id string) (domain.Violations, error) {
	widget, err := s.storage.GetWidget(id)
	if err != nil {
		return nil, err
	}
	return widget.Validate(s.limits), nil
}

// PickNext advances the round-robin picker and returns the newly
// selected widget. On an empty catalog it returns nil.
func (s *WidgetService) PickNext() *domain.Widget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.picker.SelectNext()
}

// Picked returns the currently selected widget, or false when nothing
// has been picked yet.
func (s *WidgetService) Picked() (*domain.Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.picker.Current()
}

func (s *WidgetService) CatalogSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.picker.Len()
}
