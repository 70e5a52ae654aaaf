package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Enterprise is a service business tracked by the ledger: it bills
// hours at an hourly rate and carries a running expense total.
type Enterprise struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	ContactAlias string          `json:"contactAlias,omitempty"`
	HourlyRate   decimal.Decimal `json:"hourlyRate"`
	HoursBilled  int64           `json:"hoursBilled"`
	Expenses     decimal.Decimal `json:"expenses"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func NewEnterprise(name string) *Enterprise {
	now := time.Now()
	return &Enterprise{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Revenue is recomputed from the current rate and hours on every call.
// It is never stored, so it can't go stale.
func (e *Enterprise) Revenue() decimal.Decimal {
	return e.HourlyRate.Mul(decimal.NewFromInt(e.HoursBilled))
}

// Balance is revenue less expenses.
func (e *Enterprise) Balance() decimal.Decimal {
	return e.Revenue().Sub(e.Expenses)
}

// DisplayName renders the name, suffixed with the contact alias in
// parentheses when the alias is non-blank.
func (e *Enterprise) DisplayName() string {
	return displayName(e.Name, e.ContactAlias)
}

// Touch records a modification. UpdatedAt only ever moves forward.
func (e *Enterprise) Touch() {
	if now := time.Now(); now.After(e.UpdatedAt) {
		e.UpdatedAt = now
	}
}

func displayName(name, alias string) string {
	if trimmed := strings.TrimSpace(alias); trimmed != "" {
		return fmt.Sprintf("%s (%s)", name, trimmed)
	}
	return name
}

type EnterpriseFilter struct {
	Name *string
}

type EnterpriseRepository interface {
	Create(enterprise *Enterprise) error
	Update(id string, updates map[string]interface{}) (*Enterprise, error)
	Get(id string) (*Enterprise, error)
	List(filter EnterpriseFilter) ([]*Enterprise, error)
	Delete(id string) error
}
