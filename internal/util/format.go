package util

import "fmt"

// FormatDays renders a day count with the right plural.
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatAverage renders a ratio with two decimals.
func FormatAverage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
