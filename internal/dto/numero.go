package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Numero is a decimal field for form-originated JSON. The original capture
// forms send numeric fields as numbers, numeric strings or blanks depending on
// the widget, and blank / non-numeric input must coerce to 0 rather than fail
// the bind. All coercion happens here, at the boundary; services always
// receive well-formed decimals.
type Numero struct {
	decimal.Decimal
}

func NewNumero(d decimal.Decimal) Numero { return Numero{Decimal: d} }

// UnmarshalJSON accepts a JSON number, a quoted numeric string, null or a
// blank string. Anything unparseable becomes 0.
func (n *Numero) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		n.Decimal = decimal.Zero
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	d, err := decimal.NewFromString(s)
	if err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = d
	return nil
}
