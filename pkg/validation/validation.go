// Package validation holds the field rules shared by the storefront
// checkout and the booking wizard.
package validation

import (
	"regexp"
	"strings"
	"time"
)

// Senegalese mobile numbers: operator prefix followed by seven digits.
var phonePattern = regexp.MustCompile(`^(70|75|76|77|78)[0-9]{7}$`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DateLayout is the wire format for preferred booking dates.
const DateLayout = "2006-01-02"

// IsPhone reports whether the value is a valid local mobile number.
func IsPhone(value string) bool {
	return phonePattern.MatchString(strings.TrimSpace(value))
}

// IsEmail reports whether the value looks like an email address.
func IsEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

// ParseFutureDate parses a YYYY-MM-DD date and rejects days before today.
// The comparison is calendar-based: today is accepted.
func ParseFutureDate(value string, now time.Time) (time.Time, bool) {
	parsed, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), now.Location())
	if err != nil {
		return time.Time{}, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return time.Time{}, false
	}
	return parsed, true
}
