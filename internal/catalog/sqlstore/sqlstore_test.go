package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCAP2/milsymbol/internal/catalog"
	"github.com/OCAP2/milsymbol/internal/database"
	"github.com/OCAP2/milsymbol/pkg/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.GetSqliteDB(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	s := New(db, nil)
	require.NoError(t, s.Migrate())
	return s
}

func TestImportAndLoadBuiltin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entries := catalog.Builtin().Entries()
	n, err := s.Import(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, len(entries), n)

	idx, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Builtin().Len(), idx.Len())

	infantry := idx.Lookup(core.SymbolSetLandUnit, core.PackEntity(core.SymbolSetLandUnit, 121100), catalog.KindEntity)
	require.Len(t, infantry.Nodes, 1)

	civ := idx.Lookup(core.SymbolSetLandCivilian, core.PackEntity(core.SymbolSetLandCivilian, 110000), catalog.KindEntity)
	assert.True(t, civ.Civilian)
}

func TestImportUpserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entry := catalog.Entry{
		Set:  10,
		Kind: "modifier1",
		Code: 4,
		Name: "Biological",
		Items: []catalog.Item{
			{Text: "B", Layout: "m1"},
		},
	}
	_, err := s.Import(ctx, []catalog.Entry{entry})
	require.NoError(t, err)

	entry.Name = "Biological Defense"
	entry.Items = []catalog.Item{{Text: "BIO", Layout: "m1"}}
	_, err = s.Import(ctx, []catalog.Entry{entry})
	require.NoError(t, err)

	stored, err := s.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Biological Defense", stored[0].Name)
	require.Len(t, stored[0].Items, 1)
	assert.Equal(t, "BIO", stored[0].Items[0].Text)
}

func TestImportRejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Import(ctx, []catalog.Entry{
		{Set: 10, Kind: "entity", Code: 110000, Name: "ok", Items: []catalog.Item{{Text: "C2"}}},
		{Set: 10, Kind: "entity", Code: 120000, Name: "broken", Items: []catalog.Item{{Path: "M0,0"}}},
	})
	require.Error(t, err)

	stored, err := s.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Import(ctx, []catalog.Entry{
		{Set: 30, Kind: "entity", Code: 130000, Name: "Noncombatant", Items: []catalog.Item{{Text: "NC"}}},
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, 30, catalog.KindEntity, 130000))
	require.NoError(t, s.Delete(ctx, 30, catalog.KindEntity, 130000))

	idx, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, idx.Len())
}

func TestEntriesOrdered(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Import(ctx, []catalog.Entry{
		{Set: 30, Kind: "entity", Code: 130000, Name: "b", Items: []catalog.Item{{Text: "NC"}}},
		{Set: 10, Kind: "modifier2", Code: 13, Name: "c", Items: []catalog.Item{{Text: "H", Layout: "m2"}}},
		{Set: 10, Kind: "entity", Code: 110000, Name: "a", Items: []catalog.Item{{Text: "C2"}}},
	})
	require.NoError(t, err)

	stored, err := s.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, []string{"a", "c", "b"}, []string{stored[0].Name, stored[1].Name, stored[2].Name})
}
