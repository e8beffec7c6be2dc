package booking

import "errors"

var ErrNegativeAmount = errors.New("amount cannot be negative")

type Type string

const (
	TypeHourly Type = "hourly"
	TypeDaily  Type = "daily"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeHourly, TypeDaily:
		return true
	default:
		return false
	}
}

// Money is an amount in paise. All pricing arithmetic stays in integer minor
// units; conversion to rupees happens only at the presentation edge.
type Money struct {
	paise int64
}

func NewMoney(paise int64) Money {
	return Money{paise: paise}
}

func NewMoneyChecked(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{paise: paise}, nil
}

func (m Money) Paise() int64 {
	return m.paise
}

func (m Money) Rupees() float64 {
	return float64(m.paise) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{paise: m.paise + other.paise}
}

func (m Money) Times(n int) Money {
	return Money{paise: m.paise * int64(n)}
}

// RateCard is a venue's flat pricing: one hourly rate per slot and one
// all-day rate. Peak-hour pricing is an extension point, not modeled.
type RateCard struct {
	Hourly Money
	Daily  Money
}
