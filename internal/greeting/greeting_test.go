package greeting

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsFiveGreetings(t *testing.T) {
	got := All()
	require.Len(t, got, 5)
	assert.Equal(t, "Hello, World!", got[0].Message)
	assert.Equal(t, "Italian", got[4].Language)

	got[0].Message = "changed"
	assert.Equal(t, "Hello, World!", All()[0].Message)
}

func TestHello(t *testing.T) {
	assert.Equal(t, "Hello, World!", Hello(""))
	assert.Equal(t, "Hello, React!", Hello("React"))
	assert.Equal(t, "Hello, O'Brien!", Hello("O'Brien"))
}

func TestAtomicCounterIsConcurrencySafe(t *testing.T) {
	var c AtomicCounter
	ctx := context.Background()

	var wg sync.WaitGroup
	seen := make(chan int64, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := c.Next(ctx)
			assert.NoError(t, err)
			seen <- n
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[int64]bool{}
	for n := range seen {
		unique[n] = true
	}
	assert.Len(t, unique, 100)
	n, _ := c.Next(ctx)
	assert.Equal(t, int64(101), n)
}

func TestRedisCounterRestartsOnConstruction(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	ctx := context.Background()

	require.NoError(t, mr.Set("hello:counter", "41"))

	c, err := NewRedisCounter(ctx, rdb, "hello:counter")
	require.NoError(t, err)

	first, err := c.Next(ctx)
	require.NoError(t, err)
	second, err := c.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestRedisCounterSurfacesErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	c, err := NewRedisCounter(context.Background(), rdb, "hello:counter")
	require.NoError(t, err)

	mr.SetError("server down")
	_, err = c.Next(context.Background())
	assert.Error(t, err)
}

func TestRedisCounterSharesSequenceAcrossInstances(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	ctx := context.Background()

	a, err := NewRedisCounter(ctx, rdb, "hello:counter")
	require.NoError(t, err)
	n, _ := a.Next(ctx)
	assert.Equal(t, int64(1), n)

	// a second process on the same key restarts the deployment-wide sequence
	b, err := NewRedisCounter(ctx, rdb, "hello:counter")
	require.NoError(t, err)
	n, _ = a.Next(ctx)
	assert.Equal(t, int64(1), n)
	n, _ = b.Next(ctx)
	assert.Equal(t, int64(2), n)
}
