package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatSalaryK formats a salary in thousands the way the dashboard shows it, e.g. "$89K"
func FormatSalaryK(k int) string {
	return fmt.Sprintf("$%dK", k)
}

// FormatSalary formats a salary in thousands as whole dollars, e.g. "$89,000"
func FormatSalary(k int) string {
	return "$" + humanize.Comma(int64(k)*1000)
}

// FormatRange formats a salary band in thousands, e.g. "$77K ~ $107K"
func FormatRange(lowK, highK int) string {
	return fmt.Sprintf("%s ~ %s", FormatSalaryK(lowK), FormatSalaryK(highK))
}

// FormatCount adds thousands separators to a count
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatMultiplier formats a multiplier as "x1.05"
func FormatMultiplier(m float64) string {
	return "x" + strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", m), "0"), ".")
}

// TruncateString truncates a string to length runes and adds "..." if necessary
func TruncateString(s string, length int) string {
	r := []rune(s)
	if length < 4 || len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}

// Head returns the first n elements of in, or all of in when n <= 0
func Head[T any](in []T, n int) []T {
	if n <= 0 || n >= len(in) {
		return in
	}
	return in[:n]
}

// IsValidLocationSort checks if the sort key is supported by the locations view
func IsValidLocationSort(key string) bool {
	validKeys := map[string]bool{
		"jobs":   true,
		"salary": true,
		"":       true,
	}
	return validKeys[strings.ToLower(key)]
}

// Bar draws a horizontal bar of width proportional to value/maxValue
func Bar(value, maxValue, width int) string {
	if maxValue <= 0 || width <= 0 || value <= 0 {
		return ""
	}
	n := value * width / maxValue
	if n > width {
		n = width
	}
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
