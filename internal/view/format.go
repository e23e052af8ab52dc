package view

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySuffix follows every formatted price.
const CurrencySuffix = " ₽"

var rub = message.NewPrinter(language.Russian)

// FormatPrice renders whole roubles with Russian digit grouping,
// e.g. 89990 -> "89 990 ₽".
func FormatPrice(price int64) string {
	return rub.Sprintf("%d", price) + CurrencySuffix
}

// Initial is the avatar fallback: the first letter of the name as written.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(r)
}
