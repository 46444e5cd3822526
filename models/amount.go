// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxAmount is the largest amount an entry may carry.
const MaxAmount = 99999999.99

// ErrInvalidAmount is returned when a string cannot be turned into an
// [Amount].
var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a money value in paise (1/100 of a rupee). It is encoded on the
// wire as a JSON number with two decimals.
type Amount struct {
	Paise int64
}

// NewAmount converts a rupee value into an [Amount], rounding half away from
// zero at the second decimal.
func NewAmount(rupees float64) Amount {
	return Amount{Paise: int64(math.Round(rupees * 100))}
}

// ParseAmount parses a decimal string typed into an amount field.
// Surrounding whitespace is ignored; NaN and infinities are rejected.
func ParseAmount(s string) (Amount, error) {
	f, err := ParseAmountFloat(s)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(f), nil
}

// ParseAmountFloat parses s as a finite float64.
func ParseAmountFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return f, nil
}

// Rupees returns the value as float64 for display and comparisons.
func (a Amount) Rupees() float64 {
	return float64(a.Paise) / 100
}

// String renders the amount with exactly two decimals, e.g. "1234.50".
func (a Amount) String() string {
	sign := ""
	p := a.Paise
	if p < 0 {
		sign = "-"
		p = -p
	}
	return fmt.Sprintf("%s%d.%02d", sign, p/100, p%100)
}

// MarshalJSON encodes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string, since backends
// backed by DECIMAL columns commonly return the latter.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*a = Amount{}
		return nil
	case float64:
		*a = NewAmount(value)
		return nil
	case string:
		parsed, err := ParseAmount(value)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("%w: unexpected json type %T", ErrInvalidAmount, v)
	}
}
