package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Money is an amount in integer paise. All order arithmetic stays in this
// type; rupee formatting happens only at the display edge, so summing many
// lines never accumulates floating-point drift.
type Money int64

// RupeesToMoney converts a catalogue rupee amount, rounding half away from
// zero at the second decimal.
func RupeesToMoney(v float64) Money {
	if v >= 0 {
		return Money(math.Floor(v*100 + 0.5))
	}
	return Money(math.Ceil(v*100 - 0.5))
}

// Rupees returns the amount as a float for JSON payloads.
func (m Money) Rupees() float64 { return float64(m) / 100 }

// String renders the amount the way the catalogue prints it: whole rupees
// without decimals, fractional amounts with two.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v%100 == 0 {
		return fmt.Sprintf("₹%s%d", sign, v/100)
	}
	return fmt.Sprintf("₹%s%d.%02d", sign, v/100, v%100)
}

// UnmarshalJSON reads a rupee number from the catalogue document.
func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("money: non-finite value")
	}
	*m = RupeesToMoney(v)
	return nil
}

// MarshalJSON writes the amount back as a rupee number.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Rupees())
}
