package uuidfn

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandom(t *testing.T) {
	const n = 200
	seen := make(map[uuid.UUID]bool, n)
	for i := 0; i < n; i++ {
		u := NewRandom()
		assert.Equal(t, uuid.Version(4), u.Version())
		assert.Equal(t, uuid.RFC4122, u.Variant())
		assert.False(t, seen[u], "duplicate random uuid %s", u)
		seen[u] = true
	}
}

func TestNewOrderedMonotonic(t *testing.T) {
	const n = 1000
	var prev []byte
	seen := make(map[uuid.UUID]bool, n)
	for i := 0; i < n; i++ {
		u := NewOrdered()
		require.Equal(t, uuid.Version(7), u.Version())
		require.Equal(t, uuid.RFC4122, u.Variant())
		require.False(t, seen[u], "duplicate ordered uuid %s", u)
		seen[u] = true

		b := EncodeBlob(u)
		if prev != nil {
			require.LessOrEqual(t, bytes.Compare(prev, b), 0,
				"ordered uuids regressed at call %d: %x then %x", i, prev, b)
		}
		prev = b
	}
}

func TestNewOrderedTextSorts(t *testing.T) {
	// The canonical text form must sort the same way the bytes do.
	var prev string
	for i := 0; i < 500; i++ {
		s := EncodeText(NewOrdered())
		require.LessOrEqual(t, prev, s)
		prev = s
	}
}
