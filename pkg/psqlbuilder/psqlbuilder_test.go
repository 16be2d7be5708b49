package psqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_DollarPlaceholders(t *testing.T) {
	query, args, err := Builder().
		Insert("kv_store").
		Columns("key", "value").
		Values("bs_bookings", []byte("{}")).
		Suffix(UpsertSuffix("key", "value")).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO kv_store (key,value) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET value = excluded.value",
		query)
	assert.Len(t, args, 2)
}

func TestUpsertSuffix(t *testing.T) {
	assert.Equal(t,
		"ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		UpsertSuffix("key", "value", "updated_at"))
}
