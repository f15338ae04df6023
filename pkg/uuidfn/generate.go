package uuidfn

import "github.com/google/uuid"

// NewRandom generates a version 4 UUID: 122 cryptographically strong
// random bits under the RFC 4122 variant. A failure of the process
// randomness source is unrecoverable and panics inside google/uuid.
func NewRandom() uuid.UUID {
	return uuid.New()
}

// NewOrdered generates a version 7 UUID: a 48-bit big-endian millisecond
// timestamp in the high bits followed by random bits. google/uuid embeds
// a 12-bit sub-millisecond sequence, so the byte encodings of successive
// calls are monotonically non-decreasing even within one millisecond and
// across goroutines. Sorting these as keys preserves creation order.
func NewOrdered() uuid.UUID {
	u, err := uuid.NewV7()
	if err != nil {
		// Only reachable when the randomness source is exhausted, which
		// is an environment fault, not a recoverable condition.
		panic("uuidfn: uuid v7 generation failed: " + err.Error())
	}
	return u
}
