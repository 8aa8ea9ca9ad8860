package cart

// LineItem is a product reference plus the quantity the client wants.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
}

// Cart is the session-scoped pre-checkout item list. It lives in Redis
// under the caller's session key and carries no durability guarantee.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Total recomputes the cart value from the current items on every call.
func (c Cart) Total() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

func (c Cart) indexOf(itemID string) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}
