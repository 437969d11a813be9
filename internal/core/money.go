// AngelaMos | 2026
// money.go

package core

import "fmt"

// Monetary amounts are stored as integer cents everywhere; formatting is the
// only place the dollar scale appears.

// FormatCents renders integer cents as a dollar string: 250 -> "$2.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
