// Package locale holds the pt-BR display helpers shared by the bounded contexts.
package locale

import "fmt"

// FormatAge renders an age in months the way listings present it,
// e.g. "2 anos e 3 meses", "1 ano", "1 mês".
func FormatAge(months int) string {
	if months < 0 {
		months = 0
	}
	years, rest := months/12, months%12
	switch {
	case years > 0 && rest > 0:
		return fmt.Sprintf("%s e %s", pluralYears(years), pluralMonths(rest))
	case years > 0:
		return pluralYears(years)
	default:
		return pluralMonths(rest)
	}
}

func pluralYears(n int) string {
	if n == 1 {
		return "1 ano"
	}
	return fmt.Sprintf("%d anos", n)
}

func pluralMonths(n int) string {
	if n == 1 {
		return "1 mês"
	}
	return fmt.Sprintf("%d meses", n)
}
