package utils

import "time"

// Timestamps are stored as unix seconds throughout.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// AddMonths advances a unix-seconds timestamp by whole calendar months,
// clamping to the last day of the target month. A cycle opened on Jan 31
// ends on Feb 28/29 rather than spilling into March.
func AddMonths(unixSeconds int64, months int) int64 {
	t := time.Unix(unixSeconds, 0).UTC()
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return firstOfTarget.AddDate(0, 0, d-1).Unix()
}
