package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Widget is a catalog item: a priced, optionally SKU-tagged stock line.
type Widget struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int64           `json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func NewWidget(name string) *Widget {
	now := time.Now()
	return &Widget{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PriceTag renders the unit price as a dollar amount with thousands
// separators and exactly two fraction digits, e.g. "$1,234.56".
func (w *Widget) PriceTag() string {
	return FormatUSD(w.UnitPrice)
}

// StockValue is the current worth of the widget's stock on hand,
// recomputed from price and quantity on every call.
func (w *Widget) StockValue() decimal.Decimal {
	return w.UnitPrice.Mul(decimal.NewFromInt(w.Quantity))
}

// DisplayName renders the name, suffixed with the SKU in parentheses
// when the SKU is non-blank.
func (w *Widget) DisplayName() string {
	return displayName(w.Name, w.SKU)
}

// Touch records a modification. UpdatedAt only ever moves forward.
func (w *Widget) Touch() {
	if now := time.Now(); now.After(w.UpdatedAt) {
		w.UpdatedAt = now
	}
}

// FormatUSD renders an amount like "$1,234.56". Negative amounts keep
// the sign ahead of the symbol: "-$12.00".
func FormatUSD(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	units, cents, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteByte('$')
	for i, digit := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}
	sb.WriteByte('.')
	sb.WriteString(cents)
	return sb.String()
}

type WidgetFilter struct {
	SKU     *string
	InStock *bool
}

type WidgetRepository interface {
	Create(widget *Widget) error
	Update(id string, updates map[string]interface{}) (*Widget, error)
	Get(id string) (*Widget, error)
	List(filter WidgetFilter) ([]*Widget, error)
	Delete(id string) error
}
