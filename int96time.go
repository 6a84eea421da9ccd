package parquetreader

import (
	"encoding/binary"
	"time"
)

// julianDayUnixEpoch is the Julian day number of 1970-01-01.
const julianDayUnixEpoch = 2440588

const nanosPerDay = int64(24 * time.Hour)

// Int96ToTime interprets a raw i96 value as a Parquet-convention
// timestamp: the low 8 bytes are nanoseconds within the Julian day
// given by the high 4 bytes. This is an opt-in convenience — the core
// decode path never calls it, since i96 is only "commonly" a
// timestamp, not always one.
func Int96ToTime(v [12]byte) time.Time {
	nanos := int64(binary.LittleEndian.Uint64(v[0:8]))
	julianDay := int32(binary.LittleEndian.Uint32(v[8:12]))
	unixDay := int64(julianDay) - julianDayUnixEpoch
	return time.Unix(0, unixDay*nanosPerDay+nanos).UTC()
}

// TimeToInt96 is the inverse of Int96ToTime.
func TimeToInt96(t time.Time) [12]byte {
	t = t.UTC()
	unixNanos := t.UnixNano()
	unixDay := unixNanos / nanosPerDay
	nanos := unixNanos % nanosPerDay
	if nanos < 0 {
		nanos += nanosPerDay
		unixDay--
	}
	julianDay := int32(unixDay + julianDayUnixEpoch)

	var out [12]byte
	binary.LittleEndian.PutUint64(out[0:8], uint64(nanos))
	binary.LittleEndian.PutUint32(out[8:12], uint32(julianDay))
	return out
}
