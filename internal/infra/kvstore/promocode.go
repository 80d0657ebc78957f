package kvstore

import (
	"context"
	"sort"
	"time"

	"promo-code-service/internal/domain/promocode"
	"promo-code-service/internal/infra"
	"promo-code-service/internal/pkg/config"
	"promo-code-service/internal/pkg/errs"
	"promo-code-service/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// maxCASAttempts bounds the read/compare-and-swap loop in MarkUsed. A code
// only moves unused -> used once, so a lost swap is resolved on the next read.
const maxCASAttempts = 8

// Replaces the record only if it still holds the value the caller read, and
// adds the code to the used set in the same step.
var luaRedeem = redis.NewScript(`
if redis.call("HGET", KEYS[1], ARGV[1]) == ARGV[2] then
	redis.call("HSET", KEYS[1], ARGV[1], ARGV[3])
	redis.call("SADD", KEYS[2], ARGV[1])
	return 1
else
	return 0
end`)

// PromoCodeStore keeps every record as a JSON field of one hash named after
// the collection, plus a "<collection>:used" set for counting redemptions.
type PromoCodeStore struct {
	client  redis.UniversalClient
	hashKey string
	usedKey string
}

func NewPromoCodeStore(client redis.UniversalClient, collection string) *PromoCodeStore {
	return &PromoCodeStore{
		client:  client,
		hashKey: collection,
		usedKey: collection + ":used",
	}
}

func (s *PromoCodeStore) Backend() string {
	return config.BackendRedis
}

func (s *PromoCodeStore) Exists(ctx context.Context, code promocode.Code) (bool, error) {
	ok, err := s.client.HExists(ctx, s.hashKey, code.String()).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to check promo code existence", err)
	}
	return ok, nil
}

func (s *PromoCodeStore) InsertIfAbsent(ctx context.Context, pc *promocode.PromoCode) (shared.InsertResult, error) {
	raw, err := encode(pc)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode promo code", err, infra.KindCorruptRecord)
	}

	created, err := s.client.HSetNX(ctx, s.hashKey, pc.Code().String(), raw).Result()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert promo code", err)
	}
	if !created {
		return shared.InsertAlreadyExists, nil
	}
	if pc.IsUsed() {
		if err := s.client.SAdd(ctx, s.usedKey, pc.Code().String()).Err(); err != nil {
			return 0, infra.WrapRepoErr("failed to index used promo code", err)
		}
	}
	return shared.InsertCreated, nil
}

func (s *PromoCodeStore) Get(ctx context.Context, code promocode.Code) (*promocode.PromoCode, error) {
	pc, _, err := s.read(ctx, code)
	return pc, err
}

func (s *PromoCodeStore) read(ctx context.Context, code promocode.Code) (*promocode.PromoCode, string, error) {
	raw, err := s.client.HGet(ctx, s.hashKey, code.String()).Result()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return nil, "", infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get promo code", err)
	}
	pc, err := decode(raw)
	if err != nil {
		return nil, "", infra.WrapRepoErr("stored promo code is unreadable", err, infra.KindCorruptRecord)
	}
	return pc, raw, nil
}

func (s *PromoCodeStore) MarkUsed(ctx context.Context, code promocode.Code, usedBy string, usedAt time.Time) (shared.MarkResult, *promocode.PromoCode, error) {
	for attempt := 0; attempt < maxCASAttempts; attempt++ {
		pc, raw, err := s.read(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.MarkNotFound, nil, nil
			}
			return 0, nil, err
		}
		if pc.IsUsed() {
			return shared.MarkAlreadyUsed, pc, nil
		}

		if err := pc.MarkUsed(usedBy, usedAt); err != nil {
			return 0, nil, errs.Wrap(err, "failed to apply redemption")
		}
		next, err := encode(pc)
		if err != nil {
			return 0, nil, infra.WrapRepoErr("failed to encode promo code", err, infra.KindCorruptRecord)
		}

		swapped, err := luaRedeem.Run(ctx, s.client, []string{s.hashKey, s.usedKey}, code.String(), raw, next).Int()
		if err != nil {
			return 0, nil, infra.WrapRepoErr("failed to mark promo code used", err)
		}
		if swapped == 1 {
			return shared.MarkRedeemed, pc, nil
		}
	}
	return 0, nil, infra.WrapRepoErr("promo code kept changing during redemption", nil)
}

// List returns every record, newest first.
func (s *PromoCodeStore) List(ctx context.Context) ([]*promocode.PromoCode, error) {
	all, err := s.client.HGetAll(ctx, s.hashKey).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promo codes", err)
	}

	result := make([]*promocode.PromoCode, 0, len(all))
	for field, raw := range all {
		pc, err := decode(raw)
		if err != nil {
			return nil, infra.WrapRepoErr("stored promo code "+field+" is unreadable", err, infra.KindCorruptRecord)
		}
		result = append(result, pc)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt().Equal(result[j].CreatedAt()) {
			return result[i].Code() > result[j].Code()
		}
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result, nil
}

func (s *PromoCodeStore) Stats(ctx context.Context) (shared.PromoCodeStats, error) {
	var total, used *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		total = pipe.HLen(ctx, s.hashKey)
		used = pipe.SCard(ctx, s.usedKey)
		return nil
	})
	if err != nil {
		return shared.PromoCodeStats{}, infra.WrapRepoErr("failed to count promo codes", err)
	}
	return shared.PromoCodeStats{
		Total:     total.Val(),
		Used:      used.Val(),
		Available: total.Val() - used.Val(),
	}, nil
}

func (s *PromoCodeStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return infra.WrapRepoErr("redis ping failed", err)
	}
	return nil
}
