package console

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ledgerdesk/internal/domain"
	"ledgerdesk/internal/search"
	"ledgerdesk/internal/service"
)

// Server dispatches ledger.* commands to the application services.
// It is the only presentation surface; handlers return plain values
// for the caller to render.
type Server struct {
	enterprises *service.EnterpriseService
	widgets     *service.WidgetService
	searcher    *search.CatalogSearch
	logger      *zap.Logger
}

func NewServer(enterprises *service.EnterpriseService, widgets *service.WidgetService, searcher *search.CatalogSearch, logger *zap.Logger) *Server {
	return &Server{
		enterprises: enterprises,
		widgets:     widgets,
		searcher:    searcher,
		logger:      logger,
	}
}

func (s *Server) HandleCommand(method string, params json.RawMessage) (interface{}, error) {
	s.logger.Debug("handling command", zap.String("method", method))

	switch method {
	// Enterprise commands
	case "ledger.enterprise.create":
		return s.handleEnterpriseCreate(params)
	case "ledger.enterprise.get":
		return s.handleEnterpriseGet(params)
	case "ledger.enterprise.list":
		return s.handleEnterpriseList(params)
	case "ledger.enterprise.update":
		return s.handleEnterpriseUpdate(params)
	case "ledger.enterprise.delete":
		return s.handleEnterpriseDelete(params)
	case "ledger.enterprise.validate":
		return s.handleEnterpriseValidate(params)

	// Widget commands
	case "ledger.widget.create":
		return s.handleWidgetCreate(params)
	case "ledger.widget.get":
		return s.handleWidgetGet(params)
	case "ledger.widget.list":
		return s.handleWidgetList(params)
	case "ledger.widget.update":
		return s.handleWidgetUpdate(params)
	case "ledger.widget.delete":
		return s.handleWidgetDelete(params)
	case "ledger.widget.validate":
		return s.handleWidgetValidate(params)

	// Picker commands
	case "ledger.widget.pick":
		return s.handleWidgetPick()
	case "ledger.widget.picked":
		return s.handleWidgetPicked()

	// Search
	case "ledger.catalog.search":
		return s.handleCatalogSearch(params)

	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

// Enterprise handlers
type CreateEnterpriseParams struct {
	Name         string `json:"name"`
	ContactAlias string `json:"contactAlias,omitempty"`
	HourlyRate   string `json:"hourlyRate,omitempty"`
	HoursBilled  int64  `json:"hoursBilled,omitempty"`
	Expenses     string `json:"expenses,omitempty"`
}

func (s *Server) handleEnterpriseCreate(params json.RawMessage) (interface{}, error) {
	var p CreateEnterpriseParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	enterprise := domain.NewEnterprise(p.Name)
	enterprise.ContactAlias = p.ContactAlias
	enterprise.HoursBilled = p.HoursBilled
	if p.HourlyRate != "" {
		rate, err := decimal.NewFromString(p.HourlyRate)
		if err != nil {
			return nil, fmt.Errorf("invalid hourlyRate: %w", err)
		}
		enterprise.HourlyRate = rate
	}
	if p.Expenses != "" {
		expenses, err := decimal.NewFromString(p.Expenses)
		if err != nil {
			return nil, fmt.Errorf("invalid expenses: %w", err)
		}
		enterprise.Expenses = expenses
	}

	if err := s.enterprises.Create(enterprise); err != nil {
		return nil, err
	}

	s.logger.Info("enterprise created",
		zap.String("id", enterprise.ID),
		zap.String("name", enterprise.Name))
	return FormatEnterprise(enterprise), nil
}

type GetByIDParams struct {
	ID string `json:"id"`
}

func (s *Server) handleEnterpriseGet(params json.RawMessage) (interface{}, error) {
	var p GetByIDParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	enterprise, err := s.enterprises.Get(p.ID)
	if err != nil {
		return nil, err
	}
	return FormatEnterprise(enterprise), nil
}

type ListEnterprisesParams struct {
	Name *string `json:"name,omitempty"`
}

func (s *Server) handleEnterpriseList(params json.RawMessage) (interface{}, error) {
	var p ListEnterprisesParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	enterprises, err := s.enterprises.List(domain.EnterpriseFilter{Name: p.Name})
	if err != nil {
		return nil, err
	}

	views := make([]*EnterpriseView, 0, len(enterprises))
	for _, enterprise := range enterprises {
		views = append(views, FormatEnterprise(enterprise))
	}
	return views, nil
}

type UpdateEnterpriseParams struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	ContactAlias *string `json:"contactAlias,omitempty"`
	HourlyRate   *string `json:"hourlyRate,omitempty"`
	HoursBilled  *int64  `json:"hoursBilled,omitempty"`
	Expenses     *string `json:"expenses,omitempty"`
}

func (s *Server) handleEnterpriseUpdate(params json.RawMessage) (interface{}, error) {
	var p UpdateEnterpriseParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	updates := make(map[string]interface{})
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.ContactAlias != nil {
		updates["contactAlias"] = *p.ContactAlias
	}
	if p.HourlyRate != nil {
		rate, err := decimal.NewFromString(*p.HourlyRate)
		if err != nil {
			return nil, fmt.Errorf("invalid hourlyRate: %w", err)
		}
		updates["hourlyRate"] = rate
	}
	if p.HoursBilled != nil {
		updates["hoursBilled"] = *p.HoursBilled
	}
	if p.Expenses != nil {
		expenses, err := decimal.NewFromString(*p.Expenses)
		if err != nil {
			return nil, fmt.Errorf("invalid expenses: %w", err)
		}
		updates["expenses"] = expenses
	}

	enterprise, err := s.enterprises.Update(p.ID, updates)
	if err != nil {
		return nil, err
	}
	return FormatEnterprise(enterprise), nil
}

func (s *Server) handleEnterpriseDelete(params json.RawMessage) (interface{}, error) {
	var p GetByIDParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if err := s.enterprises.Delete(p.ID); err != nil {
		return nil, err
	}
	return map[string]string{"deleted": p.ID}, nil
}

func (s *Server) handleEnterpriseValidate(params json.RawMessage) (interface{}, error) {
	var p GetByIDParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	violations, err := s.enterprises.Validate(p.ID)
	if err != nil {
		return nil, err
	}
	return FormatViolations(violations), nil
}

// Widget handlers
type CreateWidgetParams struct {
	Name      string `json:"name"`
	SKU       string `json:"sku,omitempty"`
	UnitPrice string `json:"unitPrice,omitempty"`
	Quantity  int64  `json:"quantity,omitempty"`
}

func (s *Server) handleWidgetCreate(params json.RawMessage) (interface{}, error) {
	var p CreateWidgetParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	widget := domain.NewWidget(p.Name)
	widget.SKU = p.SKU
	widget.Quantity = p.Quantity
	if p.UnitPrice != "" {
		price, err := decimal.NewFromString(p.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid unitPrice: %w", err)
		}
		widget.UnitPrice = price
	}

	if err := s.widgets.Create(widget); err != nil {
		return nil, err
	}

	s.logger.Info("widget created",
		zap.String("id", widget.ID),
		zap.String("name", widget.Name))
	return FormatWidget(widget), nil
}

func (s *Server) handleWidgetGet(params json.RawMessage) (interface{}, error) {
	var p GetByIDParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	widget, err := s.widgets.Get(p.ID)
	if err != nil {
		return nil, err
	}
	return FormatWidget(widget), nil
}

type ListWidgetsParams struct {
	SKU     *string `json:"sku,omitempty"`
	InStock *bool   `json:"inStock,omitempty"`
}

func (s *Server) handleWidgetList(params json.RawMessage) (interface{}, error) {
	var p ListWidgetsParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	widgets, err := s.widgets.List(domain.WidgetFilter{SKU: p.SKU, InStock: p.InStock})
	if err != nil {
		return nil, err
	}

	views := make([]*WidgetView, 0, len(widgets))
	for _, widget := range widgets {
		views = append(views, FormatWidget(widget))
	}
	return views, nil
}

type UpdateWidgetParams struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	SKU       *string `json:"sku,omitempty"`
	UnitPrice *string `json:"unitPrice,omitempty"`
	Quantity  *int64  `json:"quantity,omitempty"`
}

func (s *Server) handleWidgetUpdate(params json.RawMessage) (interface{}, error) {
	var p UpdateWidgetParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	updates := make(map[string]interface{})
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.SKU != nil {
		updates["sku"] = *p.SKU
	}
	if p.UnitPrice != nil {
		price, err := decimal.NewFromString(*p.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid unitPrice: %w", err)
		}
		updates["unitPrice"] = price
	}
	if p.Quantity != nil {
		updates["quantity"] = *p.Quantity
	}

	widget, err := s.widgets.Update(p.ID, updates)
	if err != nil {
		return nil, err
	}
	return FormatWidget(widget), nil
}

func (s *Server) handleWidgetDelete(params json.RawMessage) (interface{}, error) {
	var p GetByIDParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if err := s.widgets.Delete(p.ID); err != nil {
		return nil, err
	}
	return map[string]string{"deleted": p.ID}, nil
}

func (s *Server) handleWidgetValidate(params json.RawMessage) (interface{}, error) {
	var p GetByIDParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	violations, err := s.widgets.Validate(p.ID)
	if err != nil {
		return nil, err
	}
	return FormatViolations(violations), nil
}

// Picker handlers
func (s *Server) handleWidgetPick() (interface{}, error) {
	widget := s.widgets.PickNext()
	if widget == nil {
		return map[string]string{"status": "catalog is empty, nothing to pick"}, nil
	}

	s.logger.Info("widget picked", zap.String("name", widget.Name))
	return FormatWidget(widget), nil
}

func (s *Server) handleWidgetPicked() (interface{}, error) {
	widget, ok := s.widgets.Picked()
	if !ok {
		return map[string]string{"status": "nothing picked yet"}, nil
	}
	return FormatWidget(widget), nil
}

// Search handler
type SearchParams struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

func (s *Server) handleCatalogSearch(params json.RawMessage) (interface{}, error) {
	var p SearchParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	return s.searcher.Search(p.Query, search.Options{Limit: p.Limit})
}
