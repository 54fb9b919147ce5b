package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "hour").
		From("booking_hours").
		Where(squirrel.Eq{"room_id": int64(1)}).
		Where(squirrel.Eq{"booking_date": "2026-10-15"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, hour FROM booking_hours WHERE room_id = $1 AND booking_date = $2", query)
	assert.Equal(t, []interface{}{int64(1), "2026-10-15"}, args)
}

func TestInsert_UsesDollarPlaceholders(t *testing.T) {
	query, _, err := Insert("contact_messages").
		Columns("name", "email").
		Values("Ana", "ana@example.com").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO contact_messages (name,email) VALUES ($1,$2)", query)
}
