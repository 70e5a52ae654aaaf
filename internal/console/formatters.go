package console

import (
	"ledgerdesk/internal/domain"
)

// EnterpriseView is the display shape of an enterprise: stored fields
// plus the derived values, computed at render time.
type EnterpriseView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	HourlyRate  string `json:"hourlyRate"`
	HoursBilled int64  `json:"hoursBilled"`
	Expenses    string `json:"expenses"`
	Revenue     string `json:"revenue"`
	Balance     string `json:"balance"`
}

func FormatEnterprise(enterprise *domain.Enterprise) *EnterpriseView {
	return &EnterpriseView{
		ID:          enterprise.ID,
		DisplayName: enterprise.DisplayName(),
		HourlyRate:  domain.FormatUSD(enterprise.HourlyRate),
		HoursBilled: enterprise.HoursBilled,
		Expenses:    domain.FormatUSD(enterprise.Expenses),
		Revenue:     domain.FormatUSD(enterprise.Revenue()),
		Balance:     domain.FormatUSD(enterprise.Balance()),
	}
}

// WidgetView is the display shape of a widget.
type WidgetView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	PriceTag    string `json:"priceTag"`
	Quantity    int64  `json:"quantity"`
	StockValue  string `json:"stockValue"`
}

func FormatWidget(widget *domain.Widget) *WidgetView {
	return &WidgetView{
		ID:          widget.ID,
		DisplayName: widget.DisplayName(),
		PriceTag:    widget.PriceTag(),
		Quantity:    widget.Quantity,
		StockValue:  domain.FormatUSD(widget.StockValue()),
	}
}

// ValidationView reports a validation run; Valid is explicit so an
// empty violation list reads unambiguously.
type ValidationView struct {
	Valid      bool              `json:"valid"`
	Violations domain.Violations `json:"violations,omitempty"`
}

func FormatViolations(violations domain.Violations) *ValidationView {
	return &ValidationView{
		Valid:      violations.OK(),
		Violations: violations,
	}
}
