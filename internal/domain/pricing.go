package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DiscountPercent процент скидки относительно старой цены, округлённый до
// целого. Ноль, если старой цены нет. Пара цен не валидируется: если
// price > oldPrice, результат отрицательный и отдаётся как есть.
func DiscountPercent(price, oldPrice float64) int {
	if oldPrice == 0 {
		return 0
	}
	pct := decimal.NewFromFloat(oldPrice - price).
		Div(decimal.NewFromFloat(oldPrice)).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}

// FormatPrice цена с группировкой тысяч пробелом, без дробной части и с
// суффиксом валюты: FormatPrice(7500) == "7 500 FCFA".
func FormatPrice(price float64) string {
	s := decimal.NewFromFloat(price).Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	return out + " FCFA"
}
