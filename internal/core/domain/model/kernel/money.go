package kernel

import (
	"fmt"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoneyFromString, NewMoneyFromDecimal, or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoneyFromString, NewMoneyFromDecimal, or ZeroMoney")

// Money is an immutable value object representing a two-decimal currency
// amount. It is backed by exact decimal arithmetic, so multiplying by regional
// factors and summing daily totals never loses precision to binary floats.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoneyFromString parses a decimal string such as "30000.00" into Money.
// The amount is rounded to two decimal places. Negative amounts are rejected.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoneyFromDecimal(amount)
}

// NewMoneyFromDecimal creates Money from a decimal amount, rounding to two
// decimal places. Negative amounts are rejected.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{
		amount: amount.Round(2),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a valid Money of 0.00, used as the identity for sums.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// MulFactor multiplies the amount by a decimal factor given as a string
// (e.g. "1.20") and returns the result rounded to two decimal places.
func (m Money) MulFactor(factor string) (Money, error) {
	f, err := decimal.NewFromString(factor)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money factor", err)
	}
	return NewMoneyFromDecimal(m.amount.Mul(f))
}

// Add returns the exact sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual reports whether both amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two decimal places, e.g. "1200.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
