package store

import (
	"strconv"
	"strings"
)

// RecordKeyPrefix marks keys that hold hall entries. A record's key is
// always this prefix followed by the decimal form of its ID, and the ID
// stored inside the value must keep matching that suffix so the record can
// be found again.
const RecordKeyPrefix = "SI-"

// KeyFor formats the storage key for an entry ID.
func KeyFor(id uint64) string {
	return RecordKeyPrefix + strconv.FormatUint(id, 10)
}

// IsRecordKey reports whether key names a hall entry rather than anything
// else sharing the backend namespace.
func IsRecordKey(key string) bool {
	return strings.HasPrefix(key, RecordKeyPrefix)
}
