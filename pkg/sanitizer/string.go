package sanitizer

import "strings"

// NormalizeName trims and collapses runs of whitespace. Case is kept.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// NormalizeCode upper-cases IATA, chain and currency codes.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
