package tinvest

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/etnz/invest"
)

// quotation is the API's fixed-point number: integer units plus a nano part
// of the same sign. The REST layer serializes units as a string.
type quotation struct {
	Units string `json:"units"`
	Nano  int32  `json:"nano"`
}

// decimal converts the quotation exactly: units + nano*1e-9. A missing or
// malformed value maps to zero, like the original feed's empty fields.
func (q quotation) decimal() decimal.Decimal {
	units, err := strconv.ParseInt(q.Units, 10, 64)
	if err != nil && q.Units != "" {
		return decimal.Decimal{}
	}
	return decimal.NewFromInt(units).Add(decimal.New(int64(q.Nano), -9))
}

// moneyValue is a quotation tagged with a currency code.
type moneyValue struct {
	quotation
	Currency string `json:"currency"`
}

func (v moneyValue) money() invest.Money {
	return invest.M(v.decimal(), strings.ToUpper(v.Currency))
}
