package store

import "time"

// Millis is the persisted instant type: unix milliseconds, zero meaning
// absent. The original data set stores provider timestamps this way.
type Millis int64

// Now returns the current instant for stamping createdAt/updatedAt.
func Now() Millis {
	return Millis(time.Now().UnixMilli())
}

// ToMillis converts a local time for persistence.
func ToMillis(t time.Time) Millis {
	if t.IsZero() {
		return 0
	}
	return Millis(t.UnixMilli())
}

// Time converts back to a local time. An absent timestamp coerces to
// the time of the read, an accepted data-quality compromise carried
// over from the original data set.
func (m Millis) Time() time.Time {
	if m == 0 {
		return time.Now()
	}
	return time.UnixMilli(int64(m))
}
