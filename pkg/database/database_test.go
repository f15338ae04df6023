package database

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type document struct {
	ID    BlobUUID `gorm:"type:blob;primaryKey"`
	Title string
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(&Config{Path: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestOpenRegistersFunctions(t *testing.T) {
	db := openTestDB(t)

	var out string
	require.NoError(t, db.Raw("SELECT uuid()").Scan(&out).Error)
	assert.Len(t, out, 36)
}

func TestModelRoundTrip(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&document{}))

	ids := make([]BlobUUID, 0, 10)
	for i := 0; i < 10; i++ {
		doc := document{ID: NewOrderedBlobUUID(), Title: "doc"}
		require.NoError(t, db.Create(&doc).Error)
		ids = append(ids, doc.ID)
	}

	for _, id := range ids {
		var got document
		require.NoError(t, db.First(&got, "id = ?", id).Error)
		assert.Equal(t, id, got.ID)
	}

	// The SQL functions can normalize the stored blobs back to text.
	var texts []string
	require.NoError(t, db.Raw("SELECT uuid_str(id) FROM documents ORDER BY id").Scan(&texts).Error)
	require.Len(t, texts, 10)
	assert.True(t, sort.StringsAreSorted(texts), "v7 keys must keep insertion order")
	for i, s := range texts {
		assert.Equal(t, ids[i].String(), s)
	}
}

func TestDefaultClauseThroughGorm(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Exec(
		"CREATE TABLE events(id BLOB PRIMARY KEY DEFAULT (uuid7_blob()), val INTEGER)").Error)
	for i := 0; i < 50; i++ {
		require.NoError(t, db.Exec("INSERT INTO events(val) VALUES (?)", i).Error)
	}

	var count int64
	require.NoError(t, db.Raw("SELECT count(*) FROM events WHERE length(id) = 16").Scan(&count).Error)
	assert.EqualValues(t, 50, count)

	// Generated keys are unique and preserve insertion order.
	var vals []int
	require.NoError(t, db.Raw("SELECT val FROM events ORDER BY id").Scan(&vals).Error)
	require.Len(t, vals, 50)
	assert.True(t, sort.IntsAreSorted(vals))

	var distinct int64
	require.NoError(t, db.Raw("SELECT count(DISTINCT id) FROM events").Scan(&distinct).Error)
	assert.EqualValues(t, 50, distinct)
}
