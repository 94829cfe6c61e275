package filetime

import "time"

// epochDelta is the number of 100ns intervals between the
// file time epoch and the unix epoch.
const epochDelta = 116444736000000000

// FromTime converts a golang time into a file timestamp.
// The zero time maps to the zero timestamp.
func FromTime(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	return uint64(t.UnixNano()/100 + epochDelta)
}

// ToTime converts a file timestamp into a golang time in
// the UTC location. The zero timestamp maps to zero time.
func ToTime(ft uint64) time.Time {
	if ft == 0 {
		return time.Time{}
	}
	nsec := (int64(ft) - epochDelta) * 100
	return time.Unix(0, nsec).UTC()
}
