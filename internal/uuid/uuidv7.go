// Package uuid generates time-ordered UUIDv7 identifiers. Entries and
// executions are listed chronologically, so time-ordered primary keys keep
// index order close to query order.
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	googleuuid "github.com/google/uuid"
)

// New generates a UUIDv7 from the current wall clock.
func New() string {
	return NewAt(time.Now())
}

// NewAt generates a UUIDv7 whose timestamp bits come from the given time.
// The engines call this with their injected clock so identifiers sort in
// the same order the clock produced them, including under a manual test
// clock.
//
// Layout (RFC 4122 draft):
//   - 48 bits Unix milliseconds
//   - 4 bits version (7)
//   - 74 bits randomness (with the variant bits fixed to 10)
func NewAt(t time.Time) string {
	var id [16]byte

	ms := uint64(t.UnixMilli())
	binary.BigEndian.PutUint64(id[0:8], ms<<16)

	if _, err := rand.Read(id[6:]); err != nil {
		// No randomness available; a v4 from google/uuid still gives a
		// unique key, just not a time-ordered one.
		return googleuuid.New().String()
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(id[0:4]),
		binary.BigEndian.Uint16(id[4:6]),
		binary.BigEndian.Uint16(id[6:8]),
		binary.BigEndian.Uint16(id[8:10]),
		id[10:16],
	)
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
