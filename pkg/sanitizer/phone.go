package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Numbers written without a country prefix are tried against these regions in order.
var defaultRegions = []string{"ES", "GB", "US"}

// NormalizePhone formats phone as E.164. Numbers that are not valid for
// their own country code, or for any default region when written without
// one, are returned trimmed so the provider sees what the traveler typed.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	if number, ok := parsePhone(phone); ok {
		return phonenumbers.Format(number, phonenumbers.E164)
	}
	return phone
}

func parsePhone(phone string) (*phonenumbers.PhoneNumber, bool) {
	if strings.HasPrefix(phone, "+") {
		number, err := phonenumbers.Parse(phone, "")
		if err != nil || !phonenumbers.IsValidNumber(number) {
			return nil, false
		}
		return number, true
	}

	for _, region := range defaultRegions {
		number, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsValidNumberForRegion(number, region) {
			return number, true
		}
	}
	return nil, false
}
