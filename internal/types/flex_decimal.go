package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// FlexDecimal is a decimal amount that can be unmarshaled from either a JSON
// number or a JSON string. Clients send money both ways.
type FlexDecimal decimal.Decimal

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("FlexDecimal: invalid amount string %q: %w", s, err)
		}
		*f = FlexDecimal(d)
		return nil
	}

	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("FlexDecimal: unexpected type, expected number or string")
	}
	*f = FlexDecimal(d)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexDecimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(decimal.Decimal(f))
}

// Decimal converts FlexDecimal back to decimal.Decimal.
func (f FlexDecimal) Decimal() decimal.Decimal {
	return decimal.Decimal(f)
}
