package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgechef/v2/internal/ports/outbound"
)

func TestStore_SetAndGet(t *testing.T) {
	store := NewStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("value"), 0))

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}

func TestStore_Get_MissingKey(t *testing.T) {
	store := NewStore()
	defer store.Close()

	_, err := store.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, outbound.ErrKeyNotFound)
}

func TestStore_Get_ReturnsCopy(t *testing.T) {
	store := NewStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("value"), 0))

	first, err := store.Get(ctx, "key")
	require.NoError(t, err)
	first[0] = 'X'

	second, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), second)
}

func TestStore_TTLExpiry(t *testing.T) {
	store := NewStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "ephemeral", []byte("x"), 10*time.Millisecond))
	require.NoError(t, store.Set(ctx, "durable", []byte("y"), 0))

	time.Sleep(30 * time.Millisecond)

	_, err := store.Get(ctx, "ephemeral")
	assert.ErrorIs(t, err, outbound.ErrKeyNotFound)

	exists, err := store.Exists(ctx, "ephemeral")
	require.NoError(t, err)
	assert.False(t, exists)

	value, err := store.Get(ctx, "durable")
	require.NoError(t, err)
	assert.Equal(t, []byte("y"), value)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("value"), 0))
	require.NoError(t, store.Delete(ctx, "key"))

	_, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, outbound.ErrKeyNotFound)

	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestStore_Exists(t *testing.T) {
	store := NewStore()
	defer store.Close()
	ctx := context.Background()

	exists, err := store.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Set(ctx, "key", []byte("value"), 0))

	exists, err = store.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	defer store.Close()
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = store.Set(ctx, "shared", []byte("w"), 0)
		}
	}()
	for i := 0; i < 100; i++ {
		_, _ = store.Get(ctx, "shared")
	}
	<-done

	value, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, []byte("w"), value)
}
