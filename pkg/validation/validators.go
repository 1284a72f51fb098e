package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Salary columns are NUMERIC(10,2)
const (
	moneyMaxDigits   = 10
	moneyMaxDecimals = 2
)

// New returns a validator that reports fields by their form name and knows
// the custom tags used by the domain inputs.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("money", Money)
}

// Money validates a fixed-point amount given as a string: non-negative,
// at most 10 digits with at most 2 after the decimal point.
func Money(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	if val == "" {
		return true // Optional, use required if needed
	}
	_, ok := ParseMoney(val)
	return ok
}

// ParseMoney parses and range-checks a salary amount.
func ParseMoney(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	if -d.Exponent() > moneyMaxDecimals {
		// Trailing zeros beyond two places are harmless ("10.500")
		if !d.Equal(d.Truncate(moneyMaxDecimals)) {
			return decimal.Zero, false
		}
		d = d.Truncate(moneyMaxDecimals)
	}
	intDigits := len(d.Truncate(0).Abs().String())
	if intDigits > moneyMaxDigits-moneyMaxDecimals {
		return decimal.Zero, false
	}
	return d, true
}
