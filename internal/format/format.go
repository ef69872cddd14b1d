// Package format holds the numeric, currency and date formatting rules shared
// by every document template.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Money renders a monetary value with thousands separators and exactly two
// decimal places, e.g. 1234.5 -> "1,234.50".
func Money(n float64) string {
	neg := n < 0
	s := strconv.FormatFloat(math.Abs(n), 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(parts[1])
	return b.String()
}

// Quantity renders a quantity without a trailing fractional part when it is
// mathematically integral: 2.0 -> "2", 2.5 -> "2.5".
func Quantity(q float64) string {
	if q == math.Trunc(q) {
		return strconv.FormatFloat(q, 'f', 0, 64)
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// safeSymbols maps currency symbols outside the render backend's guaranteed
// glyph set to their ISO-style codes so the output never contains corrupted
// glyphs. $, £, ¥ and € are part of the backend's built-in font encoding and
// pass through unchanged, as do unmapped symbols (best effort).
var safeSymbols = map[string]string{
	"₦": "NGN",
	"₹": "INR",
	"₩": "KRW",
	"₽": "RUB",
	"₣": "CHF",
	"₱": "PHP",
	"₺": "TRY",
	"₫": "VND",
	"৳": "BDT",
	"₪": "ILS",
}

// SafeCurrency resolves a currency symbol to a render-safe representation
func SafeCurrency(symbol string) string {
	if mapped, ok := safeSymbols[symbol]; ok {
		return mapped
	}
	return symbol
}

// DateStyle selects one of the textual date renderings used by the template
// families.
type DateStyle int

const (
	// DateUS renders MM/DD/YYYY
	DateUS DateStyle = iota
	// DateLong renders "January 2, 2006"
	DateLong
	// DateISO renders YYYY-MM-DD
	DateISO
)

func (s DateStyle) layout() string {
	switch s {
	case DateLong:
		return "January 2, 2006"
	case DateISO:
		return "2006-01-02"
	default:
		return "01/02/2006"
	}
}

// Date renders t in the given style. A nil or zero date falls back to today,
// matching the behavior of the printed forms this service reproduces.
func Date(t *time.Time, style DateStyle) string {
	when := time.Now()
	if t != nil && !t.IsZero() {
		when = *t
	}
	return when.Format(style.layout())
}

// PaymentMethod turns a snake_case payment method token into its display
// form: "bank_transfer" -> "Bank Transfer".
func PaymentMethod(method string) string {
	words := strings.Split(strings.ReplaceAll(method, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Amount renders a money value prefixed with its render-safe currency symbol
func Amount(symbol string, n float64) string {
	return fmt.Sprintf("%s%s", SafeCurrency(symbol), Money(n))
}
