package source

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marshallshelly/catalog/pkg/catalog"
)

func TestSQLite_SeedAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	want, err := NewBuiltin().Load(ctx)
	require.NoError(t, err)

	db, err := OpenSQLite(path, nil)
	require.NoError(t, err)
	require.NoError(t, db.Seed(ctx, want))
	require.NoError(t, db.Close())

	src, err := Open(ctx, "sqlite:"+path, nil)
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	assert.Equal(t, KindSQLite, src.Kind())

	got, err := src.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLite_SeedUpserts(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"), nil)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	first := catalog.Dataset{
		Users:    []catalog.User{{ID: 1, Name: "Anna", Sex: catalog.SexFemale}},
		Products: []catalog.Product{{ID: 1, Name: "Apple", CategoryID: 9}},
	}
	require.NoError(t, db.Seed(ctx, first))

	second := catalog.Dataset{
		Users: []catalog.User{{ID: 1, Name: "Anna K.", Sex: catalog.SexFemale}},
	}
	require.NoError(t, db.Seed(ctx, second))

	got, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []catalog.User{{ID: 1, Name: "Anna K.", Sex: catalog.SexFemale}}, got.Users)
	assert.Equal(t, first.Products, got.Products)
	assert.Empty(t, got.Categories)
}

func TestSQLite_SeedRejectsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"), nil)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	base, err := NewBuiltin().Load(ctx)
	require.NoError(t, err)
	require.NoError(t, db.Seed(ctx, base))

	ds := catalog.Dataset{
		Users: []catalog.User{
			{ID: 1, Name: "Anna", Sex: catalog.SexFemale},
			{ID: 2, Name: "Roma", Sex: catalog.SexMale},
		},
		Categories: []catalog.Category{
			{ID: 5, Title: "First", OwnerID: 1},
			{ID: 5, Title: "Second", OwnerID: 2},
		},
		Products: []catalog.Product{{ID: 1, Name: "Milk", CategoryID: 5}},
	}

	err = db.Seed(ctx, ds)
	require.True(t, errors.Is(err, catalog.ErrDuplicateID))

	var verr *catalog.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "categories", verr.Table)
	assert.Equal(t, 5, verr.ID)

	got, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, base, got, "a rejected seed leaves the database untouched")
}

func TestSQLite_Closed(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"), nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = db.Load(context.Background())
	assert.True(t, errors.Is(err, ErrNoConnection))
	assert.True(t, errors.Is(db.Seed(context.Background(), catalog.Dataset{}), ErrNoConnection))
	assert.NoError(t, db.Close())
}

func TestSQLite_LoadUnseeded(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "empty.db"), nil)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Load(context.Background())

	var lerr *LoadError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "users", lerr.Table)
}
