package uuidfn

import "github.com/google/uuid"

// Decode coerces a SQLite scalar into a UUID.
//
// Accepted encodings:
//   - TEXT: the canonical 36-character hyphenated form or the plain
//     32-character hex form, hex digits in either case.
//   - BLOB: exactly 16 bytes, big-endian field order.
//
// Anything else (NULL, numeric types, wrong length, non-hex characters)
// reports ok=false. Malformed input is an expected condition here, not an
// error: callers surface it as SQL NULL.
func Decode(v Value) (uuid.UUID, bool) {
	switch v.Kind {
	case KindText:
		// uuid.Parse also accepts urn: and braced forms; those are not
		// part of the SQL surface, so gate on length first.
		if len(v.Text) != 36 && len(v.Text) != 32 {
			return uuid.UUID{}, false
		}
		u, err := uuid.Parse(v.Text)
		if err != nil {
			return uuid.UUID{}, false
		}
		return u, true
	case KindBlob:
		u, err := uuid.FromBytes(v.Blob)
		if err != nil {
			return uuid.UUID{}, false
		}
		return u, true
	default:
		return uuid.UUID{}, false
	}
}

// EncodeText renders u in the canonical lowercase hyphenated form,
// always 36 characters.
func EncodeText(u uuid.UUID) string { return u.String() }

// EncodeBlob renders u as its 16-byte big-endian representation. The
// returned slice is a copy, safe for the caller to retain.
func EncodeBlob(u uuid.UUID) []byte {
	b := make([]byte, 16)
	copy(b, u[:])
	return b
}
