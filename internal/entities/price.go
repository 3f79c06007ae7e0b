package entities

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var yenPrinter = message.NewPrinter(language.Japanese)

// FormatPrice renders a whole-yen, tax-included price.
//
//	FormatPrice(5455, LangJA) // ¥5,455（税込）
//	FormatPrice(5455, LangEN) // ¥5,455 (tax included)
func FormatPrice(price int, lang Lang) string {
	formatted := yenPrinter.Sprintf("%d", price)
	if lang == LangJA {
		return "¥" + formatted + "（税込）"
	}
	return "¥" + formatted + " (tax included)"
}
