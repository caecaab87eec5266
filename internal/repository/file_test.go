package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golfa/internal/domain"
)

func newTestStore(t *testing.T, seed []domain.Product) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	s, err := NewFileStore(path, seed)
	require.NoError(t, err)
	return s
}

func draft(name string) domain.ProductDraft {
	return domain.ProductDraft{
		Name:          name,
		Category:      domain.CategoryFabric,
		Price:         7500,
		Images:        []string{"/images/Image1.jpeg"},
		IsNew:         true,
		PublishedDate: "2025-11-25",
		Description:   "tissu de test",
	}
}

func TestFileStore_SeedsWhenFileMissing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, domain.SeedProducts())

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 9)
	assert.Equal(t, "Tissu Bazin Riche Premium", list[0].Name)
}

func TestFileStore_Create_IDsFromMaxSeen(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	first, err := s.Create(ctx, draft("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := s.Create(ctx, draft("B"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	// deletion never frees an id: max-seen keeps growing
	require.NoError(t, s.Delete(ctx, 1))
	third, err := s.Create(ctx, draft("C"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestFileStore_CreateListRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	d := draft("Tissu Bazin")
	d.OldPrice = 10500
	d.Images = []string{"/images/Image1.jpeg", "/images/Image2.jpeg"}
	created, err := s.Create(ctx, d)
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestFileStore_Update_MergesAndKeepsID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	created, err := s.Create(ctx, draft("A"))
	require.NoError(t, err)

	newName := "A+"
	newPrice := 9000.0
	updated, err := s.Update(ctx, created.ID, domain.ProductPatch{Name: &newName, Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "A+", updated.Name)
	assert.Equal(t, 9000.0, updated.Price)
	// untouched fields survive the merge
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Images, updated.Images)
	assert.Equal(t, created.Description, updated.Description)
}

func TestFileStore_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	name := "X"
	_, err := s.Update(ctx, 42, domain.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_Delete_MissingIDLeavesCollectionIntact(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	_, err := s.Create(ctx, draft("A"))
	require.NoError(t, err)
	_, err = s.Create(ctx, draft("B"))
	require.NoError(t, err)

	err = s.Delete(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestFileStore_List_CorruptFileDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	// file exists, so the seed is not applied
	s, err := NewFileStore(path, domain.SeedProducts())
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "products.json")

	s, err := NewFileStore(path, nil)
	require.NoError(t, err)
	created, err := s.Create(ctx, draft("A"))
	require.NoError(t, err)

	reopened, err := NewFileStore(path, domain.SeedProducts())
	require.NoError(t, err)
	list, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}
