package database

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"

	"github.com/weiawesome/sqlite-uuid/pkg/uuidfn"
)

// BlobUUID is a UUID column stored as a 16-byte BLOB, the storage form
// produced by uuid_blob() and uuid7_blob(). It scans from either the
// blob form or canonical/plain-hex text, and always writes the blob form.
type BlobUUID uuid.UUID

// NewRandomBlobUUID returns a fresh v4 BlobUUID.
func NewRandomBlobUUID() BlobUUID { return BlobUUID(uuidfn.NewRandom()) }

// NewOrderedBlobUUID returns a fresh v7 BlobUUID. Rows keyed by it stay
// in insertion order, which keeps the primary-key index append-only.
func NewOrderedBlobUUID() BlobUUID { return BlobUUID(uuidfn.NewOrdered()) }

// UUID converts to the underlying uuid.UUID.
func (u BlobUUID) UUID() uuid.UUID { return uuid.UUID(u) }

// String returns the canonical 36-character text form.
func (u BlobUUID) String() string { return uuidfn.EncodeText(uuid.UUID(u)) }

// Scan implements the sql.Scanner interface for reading from the database.
func (u *BlobUUID) Scan(value interface{}) error {
	if value == nil {
		*u = BlobUUID{}
		return nil
	}

	var v uuidfn.Value
	switch t := value.(type) {
	case []byte:
		v = uuidfn.BlobValue(t)
	case string:
		v = uuidfn.TextValue(t)
	default:
		return fmt.Errorf("BlobUUID: unsupported scan type %T", value)
	}

	id, ok := uuidfn.Decode(v)
	if !ok {
		return fmt.Errorf("BlobUUID: cannot decode %v as uuid", value)
	}
	*u = BlobUUID(id)
	return nil
}

// Value implements the driver.Valuer interface for writing to the database.
func (u BlobUUID) Value() (driver.Value, error) {
	return uuidfn.EncodeBlob(uuid.UUID(u)), nil
}

// GormDataType returns the GORM data type hint.
func (BlobUUID) GormDataType() string {
	return "blob"
}
