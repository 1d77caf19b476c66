package predicate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketAt(t *testing.T) {
	// Wednesday; the previous Sunday is May 12.
	ref := time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC)
	date := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 9, 0, 0, 0, time.UTC) }

	tests := []struct {
		t    time.Time
		want string
	}{
		{date(time.May, 15), BucketToday},
		{date(time.May, 14), BucketYesterday},
		{date(time.May, 16), BucketTomorrow},
		{ref.AddDate(0, 0, 121), BucketFarFuture},
		{ref.AddDate(0, 0, -121), BucketLongAgo},
		{date(time.April, 16), BucketLastFewMonths},
		{date(time.June, 13), BucketNextFewMonths},
		{date(time.May, 1), BucketLastFewWeeks},
		{date(time.May, 8), BucketLastWeek},
		{date(time.May, 12), BucketThisWeek},
		{date(time.May, 17), BucketThisWeek},
		{date(time.May, 20), BucketNextWeek},
		{date(time.June, 1), BucketNextFewWeeks},
		{date(time.June, 12), BucketNextFewWeeks},
	}

	for _, tt := range tests {
		t.Run(tt.t.Format(dateLayout), func(t *testing.T) {
			assert.Equal(t, tt.want, BucketAt(tt.t, ref))
		})
	}
}

func TestBucket(t *testing.T) {
	fixed := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, BucketNoDate},
		{"label", BucketLastWeek, BucketLastWeek},
		{"date string", "2024-05-14", BucketYesterday},
		{"rfc3339", fixed.Add(24 * time.Hour).Format(time.RFC3339), BucketTomorrow},
		{"time", fixed, BucketToday},
		{"time pointer", &fixed, BucketToday},
		{"epoch seconds", float64(fixed.Unix()), BucketToday},
		{"epoch int", fixed.AddDate(-1, 0, 0).Unix(), BucketLongAgo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bucket(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Bucket("next tuesday")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Bucket(true)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestIsBucket(t *testing.T) {
	assert.True(t, IsBucket(BucketFarFuture))
	assert.False(t, IsBucket("far future"))
	assert.Len(t, Buckets(), 13)
}
