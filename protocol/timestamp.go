package protocol

import "time"

// Timestamp is a point in time expressed in milliseconds since the Unix epoch,
// the representation used by every time field on the wire.
type Timestamp int64

// TimestampOf converts t to a Timestamp.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time returns the UTC time for ts.
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}

// IsZero reports whether ts is unset.
func (ts Timestamp) IsZero() bool {
	return ts == 0
}
