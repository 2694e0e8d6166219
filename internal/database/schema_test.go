package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableName(t *testing.T) {
	db := newTestDB(t, fixtures()...)

	name, err := TableName(db, &membership{})
	require.NoError(t, err)
	assert.Equal(t, "memberships", name)
}

func TestColumnNames(t *testing.T) {
	db := newTestDB(t, fixtures()...)

	names, err := ColumnNames(db, &author{})
	require.NoError(t, err)
	assert.Contains(t, names, "id")
	assert.Contains(t, names, "created_at")
	assert.Contains(t, names, "updated_at")
	assert.Contains(t, names, "name")
	assert.Contains(t, names, "email")

	fields, err := Columns(db, &author{})
	require.NoError(t, err)
	require.Len(t, fields, len(names))
	for i, f := range fields {
		assert.Equal(t, names[i], f.DBName)
	}
}

func TestForeignKeyColumns(t *testing.T) {
	db := newTestDB(t, fixtures()...)

	t.Run("association model", func(t *testing.T) {
		cols, err := ForeignKeyColumns(db, &membership{})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"author_id", "post_id"}, cols)
	})

	t.Run("single belongs-to", func(t *testing.T) {
		cols, err := ForeignKeyColumns(db, &post{})
		require.NoError(t, err)
		assert.Equal(t, []string{"author_id"}, cols)
	})

	t.Run("no foreign keys", func(t *testing.T) {
		cols, err := ForeignKeyColumns(db, &author{})
		require.NoError(t, err)
		assert.Empty(t, cols)
	})
}

func TestUpsertByForeignKeys(t *testing.T) {
	db := newTestDB(t, fixtures()...)
	ctx := context.Background()

	a := author{Name: "ada"}
	require.NoError(t, db.Create(&a).Error)
	p := post{Title: "first", AuthorID: a.ID}
	require.NoError(t, db.Create(&p).Error)

	// first call inserts
	m1 := membership{AuthorID: a.ID, PostID: p.ID, Role: "editor"}
	require.NoError(t, UpsertByForeignKeys(ctx, db, &m1))
	assert.NotZero(t, m1.ID)

	// same FK combination updates the existing row instead of inserting
	m2 := membership{AuthorID: a.ID, PostID: p.ID, Role: "owner"}
	require.NoError(t, UpsertByForeignKeys(ctx, db, &m2))
	assert.Equal(t, m1.ID, m2.ID)

	var count int64
	require.NoError(t, db.Model(&membership{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var stored membership
	require.NoError(t, db.First(&stored, m1.ID).Error)
	assert.Equal(t, "owner", stored.Role)

	// a different FK combination inserts a new row
	p2 := post{Title: "second", AuthorID: a.ID}
	require.NoError(t, db.Create(&p2).Error)
	m3 := membership{AuthorID: a.ID, PostID: p2.ID, Role: "editor"}
	require.NoError(t, UpsertByForeignKeys(ctx, db, &m3))
	assert.NotEqual(t, m1.ID, m3.ID)

	require.NoError(t, db.Model(&membership{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestUpsertByForeignKeysNoFKs(t *testing.T) {
	db := newTestDB(t, fixtures()...)
	ctx := context.Background()

	// a model without foreign keys is simply created
	a1 := author{Name: "solo"}
	require.NoError(t, UpsertByForeignKeys(ctx, db, &a1))
	assert.NotZero(t, a1.ID)
}

func TestUpsertByForeignKeysRequiresPointer(t *testing.T) {
	db := newTestDB(t, fixtures()...)

	err := UpsertByForeignKeys(context.Background(), db, membership{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pointer")
}
