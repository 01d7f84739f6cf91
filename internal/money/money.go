// Package money provides the fixed-scale currency type used for every amount
// the platform stores or computes. Values carry two decimal places and every
// arithmetic operation rounds its result back to that scale immediately, using
// round-half-up (half away from zero for negative intermediate values).
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept on every Money value.
const Scale = 2

// RatioScale is the precision used for shares and other dimensionless ratios.
const RatioScale = 12

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooManyDecimals = errors.New("amount has too many decimal places")
)

var hundred = decimal.NewFromInt(100)

// Money is an exact decimal amount with two fractional digits.
// The zero value is 0.00 and ready to use.
type Money struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{}

func fromDecimal(d decimal.Decimal) Money {
	return Money{d: d.Round(Scale)}
}

// FromDecimal converts an arbitrary decimal to Money, rounding to two places.
func FromDecimal(d decimal.Decimal) Money {
	return fromDecimal(d)
}

// FromCents builds Money from an integer number of minor units.
func FromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -Scale)}
}

// IsValid reports whether value can be used where a non-negative amount is
// required: negative, NaN and infinite values are rejected.
func IsValid(value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	return value >= 0
}

// New converts a float to Money. It fails for values rejected by IsValid and
// for values that would need rounding to fit two decimal places.
func New(value float64) (Money, error) {
	if !IsValid(value) {
		return Zero, ErrInvalidAmount
	}
	d := decimal.NewFromFloat(value)
	if !d.Equal(d.Round(Scale)) {
		return Zero, ErrTooManyDecimals
	}
	return Money{d: d}, nil
}

// Parse reads a decimal string such as "1500", "-3.2" or "472.50".
func Parse(input string) (Money, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Zero, ErrInvalidAmount
	}
	if !d.Equal(d.Round(Scale)) {
		return Zero, ErrTooManyDecimals
	}
	return Money{d: d.Round(Scale)}, nil
}

// MustParse is Parse for constants and tests. It panics on malformed input.
func MustParse(input string) Money {
	m, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("money: MustParse(%q): %v", input, err))
	}
	return m
}

// Sum adds all values.
func Sum(values ...Money) Money {
	total := Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func (m Money) Add(other Money) Money { return fromDecimal(m.d.Add(other.d)) }
func (m Money) Sub(other Money) Money { return fromDecimal(m.d.Sub(other.d)) }

// Mul multiplies by a dimensionless factor such as a share or a ratio.
func (m Money) Mul(factor decimal.Decimal) Money {
	return fromDecimal(m.d.Mul(factor))
}

// MulTruncate multiplies by factor and drops digits past the second decimal
// place instead of rounding, so the result never exceeds the exact product of
// a non-negative amount.
func (m Money) MulTruncate(factor decimal.Decimal) Money {
	return Money{d: m.d.Mul(factor).Truncate(Scale)}
}

// Div divides by a dimensionless divisor. Division by zero yields Zero rather
// than an error; callers that must distinguish the case check the divisor.
func (m Money) Div(divisor decimal.Decimal) Money {
	if divisor.IsZero() {
		return Zero
	}
	return fromDecimal(m.d.DivRound(divisor, Scale+RatioScale))
}

// Percent returns percent% of m.
func (m Money) Percent(percent decimal.Decimal) Money {
	return fromDecimal(m.d.Mul(percent).DivRound(hundred, Scale+RatioScale))
}

// Ratio returns part/whole at RatioScale precision, or zero when whole is zero.
func Ratio(part, whole Money) decimal.Decimal {
	if whole.d.IsZero() {
		return decimal.Zero
	}
	return part.d.DivRound(whole.d, RatioScale)
}

// PercentOf returns part as a percentage of whole rounded to two places, or
// zero when whole is zero.
func PercentOf(part, whole Money) decimal.Decimal {
	if whole.d.IsZero() {
		return decimal.Zero
	}
	return part.d.Mul(hundred).DivRound(whole.d, Scale)
}

func (m Money) Cmp(other Money) int             { return m.d.Cmp(other.d) }
func (m Money) Equal(other Money) bool          { return m.d.Equal(other.d) }
func (m Money) GreaterThan(other Money) bool    { return m.d.GreaterThan(other.d) }
func (m Money) LessThan(other Money) bool       { return m.d.LessThan(other.d) }
func (m Money) IsZero() bool                    { return m.d.IsZero() }
func (m Money) IsPositive() bool                { return m.d.IsPositive() }
func (m Money) IsNegative() bool                { return m.d.IsNegative() }
func (m Money) Neg() Money                      { return Money{d: m.d.Neg()} }
func (m Money) Abs() Money                      { return Money{d: m.d.Abs()} }
func (m Money) Decimal() decimal.Decimal        { return m.d }
func (m Money) Cents() int64                    { return m.d.Shift(Scale).IntPart() }
func (m Money) String() string                  { return m.d.StringFixed(Scale) }
func (m Money) GreaterThanOrEqual(o Money) bool { return m.d.GreaterThanOrEqual(o.d) }

// Display formats m for people, e.g. Display("$") on 1234.5 gives "$1,234.50".
func (m Money) Display(symbol string) string {
	s := m.d.Abs().StringFixed(Scale)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if m.d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Value stores Money as a fixed-scale decimal string so numeric columns never
// see a float.
func (m Money) Value() (driver.Value, error) {
	return m.d.StringFixed(Scale), nil
}

// Scan reads numeric, text and (for SQLite) float or integer column values.
func (m *Money) Scan(value interface{}) error {
	var d decimal.Decimal
	switch v := value.(type) {
	case nil:
		*m = Zero
		return nil
	case float64:
		d = decimal.NewFromFloat(v)
	case int64:
		d = decimal.NewFromInt(v)
	case []byte:
		parsed, err := decimal.NewFromString(string(v))
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}
		d = parsed
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("money: scan %q: %w", v, err)
		}
		d = parsed
	default:
		return fmt.Errorf("money: cannot scan %T", value)
	}
	*m = fromDecimal(d)
	return nil
}

// MarshalJSON encodes Money as a string with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.d.StringFixed(Scale) + `"`), nil
}

// UnmarshalJSON accepts a JSON string or number. Amounts with more than two
// decimal places are rejected rather than rounded.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*m = Zero
		return nil
	}
	raw = strings.Trim(raw, `"`)
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
