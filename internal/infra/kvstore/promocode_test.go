//go:build unit

package kvstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"promo-code-service/internal/domain/promocode"
	"promo-code-service/internal/infra"
	"promo-code-service/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func setupStore(t *testing.T) (*PromoCodeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPromoCodeStore(client, "promo_codes"), mr
}

func newPromoCode(t *testing.T, code string, createdAt time.Time) *promocode.PromoCode {
	t.Helper()
	lead, err := promocode.NewLead("Jane Doe", "Premium Plan", "jane@example.com")
	require.NoError(t, err)
	return promocode.New(promocode.Code(code), lead, createdAt)
}

func TestPromoCodeStore_InsertIfAbsent(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	result, err := store.InsertIfAbsent(ctx, newPromoCode(t, "PROMO-AAAA-BBBB", testCreatedAt))
	require.NoError(t, err)
	assert.Equal(t, shared.InsertCreated, result)

	result, err = store.InsertIfAbsent(ctx, newPromoCode(t, "PROMO-AAAA-BBBB", testCreatedAt.Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, shared.InsertAlreadyExists, result)

	stored, err := store.Get(ctx, "PROMO-AAAA-BBBB")
	require.NoError(t, err)
	assert.Equal(t, testCreatedAt, stored.CreatedAt(), "duplicate insert must not overwrite")

	exists, err := store.Exists(ctx, "PROMO-AAAA-BBBB")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(ctx, "PROMO-NONE-NONE")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPromoCodeStore_Get(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	t.Run("round trips every field", func(t *testing.T) {
		_, err := store.InsertIfAbsent(ctx, newPromoCode(t, "PROMO-CCCC-DDDD", testCreatedAt))
		require.NoError(t, err)

		pc, err := store.Get(ctx, "PROMO-CCCC-DDDD")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", pc.LeadName())
		assert.Equal(t, "Premium Plan", pc.ProductInterest())
		assert.Equal(t, "jane@example.com", pc.Contact())
		assert.Equal(t, promocode.StatusUnused, pc.Status())
		assert.Nil(t, pc.UsedBy())
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := store.Get(ctx, "PROMO-NONE-NONE")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt record", func(t *testing.T) {
		mr.HSet("promo_codes", "PROMO-BAD0-BAD0", "{not json")
		_, err := store.Get(ctx, "PROMO-BAD0-BAD0")
		assert.True(t, infra.IsKind(err, infra.KindCorruptRecord))
	})
}

func TestPromoCodeStore_MarkUsed(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	usedAt := testCreatedAt.Add(time.Hour)

	_, err := store.InsertIfAbsent(ctx, newPromoCode(t, "PROMO-AAAA-BBBB", testCreatedAt))
	require.NoError(t, err)

	result, pc, err := store.MarkUsed(ctx, "PROMO-AAAA-BBBB", "agent1", usedAt)
	require.NoError(t, err)
	assert.Equal(t, shared.MarkRedeemed, result)
	assert.Equal(t, "agent1", *pc.UsedBy())

	result, pc, err = store.MarkUsed(ctx, "PROMO-AAAA-BBBB", "agent2", usedAt.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, shared.MarkAlreadyUsed, result)
	assert.Equal(t, "agent1", *pc.UsedBy())
	assert.Equal(t, usedAt, *pc.UsedAt())

	result, pc, err = store.MarkUsed(ctx, "PROMO-NONE-NONE", "agent1", usedAt)
	require.NoError(t, err)
	assert.Equal(t, shared.MarkNotFound, result)
	assert.Nil(t, pc)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, shared.PromoCodeStats{Total: 1, Used: 1, Available: 0}, stats)
}

func TestPromoCodeStore_ConcurrentMarkUsed(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	_, err := store.InsertIfAbsent(ctx, newPromoCode(t, "PROMO-RACE-RACE", testCreatedAt))
	require.NoError(t, err)

	const workers = 20
	results := make([]shared.MarkResult, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, _, err := store.MarkUsed(ctx, "PROMO-RACE-RACE", "agent", testCreatedAt.Add(time.Duration(i)*time.Second))
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}
	wg.Wait()

	redeemed := 0
	for _, r := range results {
		if r == shared.MarkRedeemed {
			redeemed++
		} else {
			assert.Equal(t, shared.MarkAlreadyUsed, r)
		}
	}
	assert.Equal(t, 1, redeemed)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Used)
}

func TestPromoCodeStore_ListNewestFirst(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for i, code := range []string{"PROMO-AAAA-AAAA", "PROMO-BBBB-BBBB", "PROMO-CCCC-CCCC"} {
		_, err := store.InsertIfAbsent(ctx, newPromoCode(t, code, testCreatedAt.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, promocode.Code("PROMO-CCCC-CCCC"), list[0].Code())
	assert.Equal(t, promocode.Code("PROMO-AAAA-AAAA"), list[2].Code())
}

func TestPromoCodeStore_Unavailable(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	mr.Close()

	_, err := store.Exists(ctx, "PROMO-AAAA-BBBB")
	assert.True(t, infra.IsKind(err, infra.KindStorageUnavailable))

	_, err = store.InsertIfAbsent(ctx, newPromoCode(t, "PROMO-AAAA-BBBB", testCreatedAt))
	assert.True(t, infra.IsKind(err, infra.KindStorageUnavailable))

	_, _, err = store.MarkUsed(ctx, "PROMO-AAAA-BBBB", "agent1", testCreatedAt)
	assert.True(t, infra.IsKind(err, infra.KindStorageUnavailable))

	_, err = store.Stats(ctx)
	assert.True(t, infra.IsKind(err, infra.KindStorageUnavailable))

	assert.True(t, infra.IsKind(store.Ping(ctx), infra.KindStorageUnavailable))
}
