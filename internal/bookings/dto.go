package bookings

import (
	"strings"
	"time"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
)

// Filters describe the admin list predicates. All are optional and
// compose as a conjunction.
type Filters struct {
	Query       string
	Status      *enums.BookingStatus
	SessionType *enums.SessionType
	DateBucket  *enums.DateBucket
}

// ApplyFilters runs the admin predicates over the full in-memory
// collection, in sequence: search, status, session type, date bucket.
func ApplyFilters(records []models.Booking, f Filters, now time.Time) []models.Booking {
	out := make([]models.Booking, 0, len(records))
	query := strings.ToLower(strings.TrimSpace(f.Query))

	for _, record := range records {
		if query != "" && !matchesQuery(record, query) {
			continue
		}
		if f.Status != nil && record.Status != *f.Status {
			continue
		}
		if f.SessionType != nil && record.SessionType != *f.SessionType {
			continue
		}
		if f.DateBucket != nil && !f.DateBucket.Contains(record.CreatedAt, now) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchesQuery(record models.Booking, query string) bool {
	if strings.Contains(strings.ToLower(record.ContactInfo.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(record.ContactInfo.Email), query) {
		return true
	}
	if strings.Contains(record.ContactInfo.Phone, query) {
		return true
	}
	if strings.HasPrefix(strings.ToLower(record.ID.String()), query) {
		return true
	}
	return false
}
