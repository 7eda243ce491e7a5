package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-backend/internal/domain/post"
	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

func newPost(t *testing.T, title string) *post.Post {
	t.Helper()
	p, err := post.New("author-1", title, "content of "+title, nil)
	require.NoError(t, err)
	return p
}

func TestStore_InsertAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	p := newPost(t, "hello")
	require.NoError(t, repo.Insert(ctx, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "hello", got.Title)
}

func TestStore_FindByID_AbsentIsNilNotError(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	got, err := repo.FindByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_FindMany_GrowsWithInserts(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	all, err := repo.FindMany(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Insert(ctx, newPost(t, fmt.Sprintf("post-%d", i))))
		all, err = repo.FindMany(ctx)
		require.NoError(t, err)
		assert.Len(t, all, i+1)
	}
}

func TestStore_FindMany_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		require.NoError(t, repo.Insert(ctx, newPost(t, title)))
	}

	all, err := repo.FindMany(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, title := range titles {
		assert.Equal(t, title, all[i].Title)
	}
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	p := newPost(t, "before")
	require.NoError(t, repo.Insert(ctx, p))

	require.NoError(t, p.Edit("after", p.Content, p.Tags))
	updated, err := repo.Update(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
}

func TestStore_Update_AbsentIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	p := newPost(t, "ghost")
	_, err := repo.Update(ctx, p)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	keep := newPost(t, "keep")
	drop := newPost(t, "drop")
	require.NoError(t, repo.Insert(ctx, keep))
	require.NoError(t, repo.Insert(ctx, drop))

	require.NoError(t, repo.Delete(ctx, drop.ID))

	got, err := repo.FindByID(ctx, drop.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.FindMany(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)
}

func TestStore_Delete_AbsentIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	err := repo.Delete(ctx, "nope")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestStore_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := post.New("author-1", fmt.Sprintf("post-%d", i), "c", nil)
			assert.NoError(t, err)
			assert.NoError(t, repo.Insert(ctx, p))
		}(i)
	}
	wg.Wait()

	all, err := repo.FindMany(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}
