package users

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestMemoryRepository_DefaultSeed(t *testing.T) {
	repo := NewMemoryRepository(DefaultSeed()...)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].Name)
	assert.Equal(t, "alice@example.com", list[0].Email)
	assert.NotEmpty(t, list[0].ID)
}

func TestMemoryRepository_CreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		u, err := repo.Create(ctx, CreateUser{Name: "Bob", Email: "bob@x.com"})
		require.NoError(t, err)
		require.False(t, seen[u.ID], "duplicate id %s", u.ID)
		seen[u.ID] = true
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}

func TestMemoryRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, CreateUser{Name: name, Email: name + "@x.com"})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestMemoryRepository_UpdateMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, CreateUser{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, UpdateUser{Name: strptr("Bobby")})
	require.NoError(t, err)
	assert.Equal(t, "Bobby", updated.Name)
	assert.Equal(t, "bob@x.com", updated.Email)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestMemoryRepository_UpdateMissingLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(DefaultSeed()...)

	before, err := repo.List(ctx)
	require.NoError(t, err)

	_, err = repo.Update(ctx, "missing", UpdateUser{Name: strptr("x")})
	require.ErrorIs(t, err, ErrNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMemoryRepository_DeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	a, _ := repo.Create(ctx, CreateUser{Name: "a", Email: "a@x.com"})
	b, _ := repo.Create(ctx, CreateUser{Name: "b", Email: "b@x.com"})

	require.NoError(t, repo.Delete(ctx, a.ID))

	_, err := repo.Get(ctx, a.ID)
	require.ErrorIs(t, err, ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	require.ErrorIs(t, repo.Delete(ctx, a.ID), ErrNotFound)
}

func TestMemoryRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(DefaultSeed()...)

	list, _ := repo.List(ctx)
	list[0].Name = "mutated"

	again, _ := repo.List(ctx)
	assert.Equal(t, "Alice", again[0].Name)
}

func TestMemoryRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, CreateUser{Name: "n", Email: "n@x.com"})
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}
