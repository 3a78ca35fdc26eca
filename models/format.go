package models

import "fmt"

// FormatPrice renders an INR amount in the compact card form:
// ₹4.5Cr, ₹85.0L, or ₹45,000 below one lakh.
func FormatPrice(price int64) string {
	switch {
	case price >= 10000000:
		return fmt.Sprintf("₹%.1fCr", float64(price)/10000000)
	case price >= 100000:
		return fmt.Sprintf("₹%.1fL", float64(price)/100000)
	default:
		return "₹" + groupDigits(price)
	}
}

// FormatPriceLong is the spelled-out variant used in the detail view
// and in outbound messages: ₹4.5 Crore, ₹8.5 Lakh.
func FormatPriceLong(price int64) string {
	switch {
	case price >= 10000000:
		return fmt.Sprintf("₹%.1f Crore", float64(price)/10000000)
	case price >= 100000:
		return fmt.Sprintf("₹%.1f Lakh", float64(price)/100000)
	default:
		return "₹" + groupDigits(price)
	}
}

func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	out := ""
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(r)
	}
	return out
}
