package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Validation rule identifiers, reported alongside the failing field.
const (
	RuleRequired = "required"
	RuleMaxLen   = "max-length"
	RulePositive = "positive"
	RuleMax      = "max"
	RuleNonNeg   = "non-negative"
)

// Violation reports a single field failing a single rule. Validation
// never raises; callers inspect the returned collection.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type Violations []Violation

// OK reports whether the record passed every rule.
func (v Violations) OK() bool {
	return len(v) == 0
}

func (v Violations) Error() string {
	if len(v) == 0 {
		return ""
	}
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = violation.Field + ": " + violation.Message
	}
	return strings.Join(parts, "; ")
}

// Limits holds the business bounds validation checks against. The
// defaults are presumed business rules, kept configurable rather than
// baked into the rule functions.
type Limits struct {
	NameMaxLength int
	RateMax       decimal.Decimal
}

func DefaultLimits() Limits {
	return Limits{
		NameMaxLength: 100,
		RateMax:       decimal.NewFromInt(10000),
	}
}

// Validate checks the enterprise's current fields and accumulates
// every violation; it does not stop at the first failure.
func (e *Enterprise) Validate(limits Limits) Violations {
	var violations Violations
	violations = checkName(violations, e.Name, limits)
	violations = checkRate(violations, "hourlyRate", e.HourlyRate, limits)
	if e.HoursBilled < 0 {
		violations = append(violations, Violation{
			Field:   "hoursBilled",
			Rule:    RuleNonNeg,
			Message: "hours billed cannot be negative",
		})
	}
	if e.Expenses.IsNegative() {
		violations = append(violations, Violation{
			Field:   "expenses",
			Rule:    RuleNonNeg,
			Message: "expenses cannot be negative",
		})
	}
	return violations
}

// Validate checks the widget's current fields and accumulates every
// violation; it does not stop at the first failure.
func (w *Widget) Validate(limits Limits) Violations {
	var violations Violations
	violations = checkName(violations, w.Name, limits)
	if !w.UnitPrice.IsPositive() {
		violations = append(violations, Violation{
			Field:   "unitPrice",
			Rule:    RulePositive,
			Message: "unit price must be greater than zero",
		})
	}
	if w.Quantity < 0 {
		violations = append(violations, Violation{
			Field:   "quantity",
			Rule:    RuleNonNeg,
			Message: "quantity cannot be negative",
		})
	}
	return violations
}

func checkName(violations Violations, name string, limits Limits) Violations {
	if strings.TrimSpace(name) == "" {
		violations = append(violations, Violation{
			Field:   "name",
			Rule:    RuleRequired,
			Message: "name is required",
		})
	}
	// The bound is in characters, not bytes.
	if utf8.RuneCountInString(name) > limits.NameMaxLength {
		violations = append(violations, Violation{
			Field:   "name",
			Rule:    RuleMaxLen,
			Message: fmt.Sprintf("name cannot exceed %d characters", limits.NameMaxLength),
		})
	}
	return violations
}

func checkRate(violations Violations, field string, rate decimal.Decimal, limits Limits) Violations {
	if !rate.IsPositive() {
		violations = append(violations, Violation{
			Field:   field,
			Rule:    RulePositive,
			Message: "rate must be greater than zero",
		})
	}
	if rate.GreaterThanOrEqual(limits.RateMax) {
		violations = append(violations, Violation{
			Field:   field,
			Rule:    RuleMax,
			Message: fmt.Sprintf("rate must be below %s", limits.RateMax.String()),
		})
	}
	return violations
}
