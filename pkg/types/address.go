package types

import "strings"

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
}

// Validate reports the first missing field, if any.
func (a ShippingAddress) Validate() (string, bool) {
	switch {
	case strings.TrimSpace(a.FullName) == "":
		return "full_name", false
	case strings.TrimSpace(a.Address) == "":
		return "address", false
	case strings.TrimSpace(a.City) == "":
		return "city", false
	case strings.TrimSpace(a.Phone) == "":
		return "phone", false
	}
	return "", true
}

// ContactInfo identifies the person requesting a coaching session.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
