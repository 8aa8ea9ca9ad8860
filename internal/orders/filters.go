package orders

import (
	"strings"
	"time"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
)

// ApplyFilters runs the admin predicates over the full in-memory
// collection, in sequence: search, status, category, payment method,
// date bucket. The collection is expected to fit in memory; the admin
// view is not paginated.
func ApplyFilters(records []models.Order, f Filters, now time.Time) []models.Order {
	out := make([]models.Order, 0, len(records))
	query := strings.ToLower(strings.TrimSpace(f.Query))
	category := strings.TrimSpace(f.Category)

	for _, record := range records {
		if query != "" && !matchesQuery(record, query) {
			continue
		}
		if f.Status != nil && record.Status != *f.Status {
			continue
		}
		if category != "" && !containsCategory(record, category) {
			continue
		}
		if f.PaymentMethod != nil && record.PaymentMethod != *f.PaymentMethod {
			continue
		}
		if f.DateBucket != nil && !f.DateBucket.Contains(record.CreatedAt, now) {
			continue
		}
		out = append(out, record)
	}
	return out
}

// containsCategory matches when any snapshotted line item carries the
// requested product category.
func containsCategory(record models.Order, category string) bool {
	for _, item := range record.Items {
		if strings.EqualFold(item.Category, category) {
			return true
		}
	}
	return false
}

func matchesQuery(record models.Order, query string) bool {
	if strings.Contains(strings.ToLower(record.ShippingAddress.FullName), query) {
		return true
	}
	if strings.Contains(record.ShippingAddress.Phone, query) {
		return true
	}
	if strings.HasPrefix(strings.ToLower(record.ID.String()), query) {
		return true
	}
	return false
}
