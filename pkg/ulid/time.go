package ulid

import "time"

// Timestamp converts t to Unix milliseconds.
func Timestamp(t time.Time) uint64 {
	return uint64(t.UnixMilli())
}

// MillisTime converts Unix milliseconds to a UTC time.
func MillisTime(ms uint64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

// Now returns the current time in Unix milliseconds.
func Now() uint64 {
	return Timestamp(time.Now())
}

// checkTimestamp rejects timestamps that do not fit in 48 bits.
func checkTimestamp(ms uint64) error {
	if ms&timestampOverflowMask != 0 {
		return ErrTimestampOverflow
	}
	return nil
}
