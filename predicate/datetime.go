package predicate

import (
	"fmt"
	"slices"
	"time"
)

// Date bucket labels. Datetime predicates compare these labels, not raw
// timestamps.
const (
	BucketToday         = "Today"
	BucketYesterday     = "Yesterday"
	BucketTomorrow      = "Tomorrow"
	BucketFarFuture     = "Far Future"
	BucketLongAgo       = "Long Ago"
	BucketLastFewMonths = "Last Few Months"
	BucketNextFewMonths = "Next Few Months"
	BucketLastFewWeeks  = "Last Few Weeks"
	BucketLastWeek      = "Last Week"
	BucketThisWeek      = "This Week"
	BucketNextWeek      = "Next Week"
	BucketNextFewWeeks  = "Next Few Weeks"
	BucketNoDate        = "No Date"
)

// dateLayout is the layout accepted for plain date strings.
const dateLayout = "2006-01-02"

// fallbackLayout renders dates that fall outside every bucket.
const fallbackLayout = "01/02/06"

var buckets = []string{
	BucketToday,
	BucketYesterday,
	BucketTomorrow,
	BucketFarFuture,
	BucketLongAgo,
	BucketLastFewMonths,
	BucketNextFewMonths,
	BucketLastFewWeeks,
	BucketLastWeek,
	BucketThisWeek,
	BucketNextWeek,
	BucketNextFewWeeks,
	BucketNoDate,
}

// Buckets returns all bucket labels.
func Buckets() []string { return slices.Clone(buckets) }

// IsBucket reports whether s is a bucket label.
func IsBucket(s string) bool { return slices.Contains(buckets, s) }

// now is replaced in tests.
var now = time.Now

// Bucket maps a date value to its bucket label relative to the current time.
//
// v may be nil (No Date), a bucket label, a "2006-01-02" or RFC 3339 string,
// epoch seconds, or a time.Time.
func Bucket(v any) (string, error) {
	if s, ok := v.(string); ok && IsBucket(s) {
		return s, nil
	}
	if v == nil {
		return BucketNoDate, nil
	}
	t, err := toTime(v)
	if err != nil {
		return "", err
	}
	return BucketAt(t, now()), nil
}

// BucketAt maps t to its bucket label relative to ref. Weeks start on Sunday;
// "few months" means more than four weeks and "far" more than 120 days.
func BucketAt(t, ref time.Time) string {
	loc := ref.Location()
	today := midnight(ref)
	d := midnight(t.In(loc))
	day := func(n int) time.Time { return today.AddDate(0, 0, n) }

	switch {
	case d.Equal(today):
		return BucketToday
	case d.Equal(day(-1)):
		return BucketYesterday
	case d.Equal(day(1)):
		return BucketTomorrow
	case d.After(day(120)):
		return BucketFarFuture
	case d.Before(day(-120)):
		return BucketLongAgo
	case d.Before(day(-28)):
		return BucketLastFewMonths
	case d.After(day(28)):
		return BucketNextFewMonths
	}

	// Monday is one day after Sunday, Sunday itself is seven.
	sinceSunday := (int(today.Weekday())+6)%7 + 1
	lastSunday := day(-sinceSunday)

	switch {
	case d.Before(lastSunday.AddDate(0, 0, -7)):
		return BucketLastFewWeeks
	case d.Before(lastSunday):
		return BucketLastWeek
	case d.Before(lastSunday.AddDate(0, 0, 7)):
		return BucketThisWeek
	case d.Before(lastSunday.AddDate(0, 0, 14)):
		return BucketNextWeek
	case !d.After(day(28)):
		return BucketNextFewWeeks
	}
	return t.Format(fallbackLayout)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func toTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case *time.Time:
		if x != nil {
			return *x, nil
		}
	case string:
		if t, err := time.ParseInLocation(dateLayout, x, time.Local); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.RFC3339, x); err == nil {
			return t, nil
		}
	default:
		if secs, ok := asNumber(v); ok {
			whole := int64(secs)
			return time.Unix(whole, int64((secs-float64(whole))*1e9)), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %v (%T)", ErrInvalidDate, v, v)
}
