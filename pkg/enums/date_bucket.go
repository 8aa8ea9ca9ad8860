package enums

import (
	"fmt"
	"time"
)

// DateBucket is the coarse created-at filter used by the admin views.
type DateBucket string

const (
	DateBucketToday     DateBucket = "today"
	DateBucketThisWeek  DateBucket = "this-week"
	DateBucketThisMonth DateBucket = "this-month"
	DateBucketPast      DateBucket = "past"
)

var validDateBuckets = []DateBucket{
	DateBucketToday,
	DateBucketThisWeek,
	DateBucketThisMonth,
	DateBucketPast,
}

// String implements fmt.Stringer.
func (d DateBucket) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DateBucket.
func (d DateBucket) IsValid() bool {
	for _, candidate := range validDateBuckets {
		if candidate == d {
			return true
		}
	}
	return false
}

// Contains reports whether a created-at timestamp falls into the bucket
// relative to now. Buckets are calendar-based in now's location: "today"
// is the current day, "this-week" starts on Monday, "this-month" on the
// first, and "past" is everything before today.
func (d DateBucket) Contains(createdAt, now time.Time) bool {
	loc := now.Location()
	createdAt = createdAt.In(loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch d {
	case DateBucketToday:
		return !createdAt.Before(dayStart) && createdAt.Before(dayStart.AddDate(0, 0, 1))
	case DateBucketThisWeek:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		weekStart := dayStart.AddDate(0, 0, -(weekday - 1))
		return !createdAt.Before(weekStart) && createdAt.Before(weekStart.AddDate(0, 0, 7))
	case DateBucketThisMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return !createdAt.Before(monthStart) && createdAt.Before(monthStart.AddDate(0, 1, 0))
	case DateBucketPast:
		return createdAt.Before(dayStart)
	}
	return false
}

// ParseDateBucket converts raw input into a DateBucket.
func ParseDateBucket(value string) (DateBucket, error) {
	for _, candidate := range validDateBuckets {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid date bucket %q", value)
}
