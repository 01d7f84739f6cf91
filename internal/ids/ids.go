// Package ids generates identifiers for stored records.
package ids

import (
	"crypto/rand"
	"sync"
	"time"

	googleuuid "github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// New returns a time-ordered UUIDv7 string suitable for primary keys.
// Keys created later sort after earlier ones, which gives stable iteration
// order for records created in sequence.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// NewReference returns a ULID used as the human-quotable reference of a
// ledger entry. References are monotonic within a process.
func NewReference() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// IsValid reports whether s is a well-formed UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
