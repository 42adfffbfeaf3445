package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	integerRe = regexp.MustCompile(`^-?[0-9]+$`)
	plainRe   = regexp.MustCompile(`^-?(?:[0-9]+\.[0-9]*|\.[0-9]+)$`)
	// Leading digit, any digits/dots/commas, then one separator and two digits.
	groupedRe = regexp.MustCompile(`^-?[0-9][0-9.,]*[.,][0-9]{2}$`)

	stripSeparators = strings.NewReplacer(".", "", ",", "")
)

// amountAttempt tries one numeric shape. ok is false when the token does
// not have that shape and the next attempt should run.
type amountAttempt func(token string) (d decimal.Decimal, ok bool)

var amountAttempts = []amountAttempt{
	parseInteger,
	parsePlainDecimal,
	parseGrouped,
}

// ParseAmount converts an amount token into an exact decimal. It accepts a
// plain integer ("42"), a plain decimal ("12.30") or a grouped amount whose
// last separator has two digits after it ("12,30", "1,000.00", "1.000,00").
// Every shape may carry a leading "-".
func ParseAmount(token string) (decimal.Decimal, error) {
	for _, try := range amountAttempts {
		if d, ok := try(token); ok {
			return d, nil
		}
	}
	return decimal.Zero, &AmountParseError{Token: token}
}

func parseInteger(token string) (decimal.Decimal, bool) {
	if !integerRe.MatchString(token) {
		return decimal.Zero, false
	}
	neg, digits := cutSign(token)
	return fromDigits(neg, digits, 0)
}

func parsePlainDecimal(token string) (decimal.Decimal, bool) {
	if !plainRe.MatchString(token) {
		return decimal.Zero, false
	}
	neg, body := cutSign(token)
	whole, frac, _ := strings.Cut(body, ".")
	return fromDigits(neg, whole+frac, int32(len(frac)))
}

func parseGrouped(token string) (decimal.Decimal, bool) {
	if !groupedRe.MatchString(token) {
		return decimal.Zero, false
	}
	neg, body := cutSign(token)
	return fromDigits(neg, stripSeparators.Replace(body), 2)
}

func cutSign(token string) (neg bool, rest string) {
	rest, neg = strings.CutPrefix(token, "-")
	return neg, rest
}

// fromDigits builds ±digits×10^-scale.
func fromDigits(neg bool, digits string, scale int32) (decimal.Decimal, bool) {
	if digits == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, false
	}
	d = d.Shift(-scale)
	if neg {
		d = d.Neg()
	}
	return d, true
}
