//go:build unit || e2e

package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"promo-code-service/internal/domain/promocode"
	"promo-code-service/internal/infra"
	"promo-code-service/internal/usecase/shared"
)

// MemoryStore is an in-process PromoCodeStore whose conditional writes are
// atomic under a mutex. Records are held as snapshots so callers cannot
// mutate stored state through returned pointers.
type MemoryStore struct {
	mu      sync.Mutex
	records map[promocode.Code]snapshot

	// FailWith, when set, is returned (wrapped) by every operation.
	FailWith error
	inserts  int
}

type snapshot struct {
	code                            string
	leadName, productInterest, cont string
	createdAt                       time.Time
	status                          string
	usedBy                          *string
	usedAt                          *time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[promocode.Code]snapshot{}}
}

func (s *MemoryStore) Backend() string { return "memory" }

func (s *MemoryStore) fail(op string) error {
	if s.FailWith == nil {
		return nil
	}
	return infra.WrapRepoErr(op, s.FailWith)
}

func (s *MemoryStore) Exists(_ context.Context, code promocode.Code) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("exists"); err != nil {
		return false, err
	}
	_, ok := s.records[code]
	return ok, nil
}

func (s *MemoryStore) InsertIfAbsent(_ context.Context, pc *promocode.PromoCode) (shared.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("insert"); err != nil {
		return 0, err
	}
	if _, ok := s.records[pc.Code()]; ok {
		return shared.InsertAlreadyExists, nil
	}
	s.records[pc.Code()] = take(pc)
	s.inserts++
	return shared.InsertCreated, nil
}

func (s *MemoryStore) Get(_ context.Context, code promocode.Code) (*promocode.PromoCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("get"); err != nil {
		return nil, err
	}
	snap, ok := s.records[code]
	if !ok {
		return nil, infra.WrapRepoErr("promo code not found", nil, infra.KindNotFound)
	}
	return snap.restore()
}

func (s *MemoryStore) MarkUsed(_ context.Context, code promocode.Code, usedBy string, usedAt time.Time) (shared.MarkResult, *promocode.PromoCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("mark used"); err != nil {
		return 0, nil, err
	}
	snap, ok := s.records[code]
	if !ok {
		return shared.MarkNotFound, nil, nil
	}
	pc, err := snap.restore()
	if err != nil {
		return 0, nil, err
	}
	if pc.IsUsed() {
		return shared.MarkAlreadyUsed, pc, nil
	}
	if err := pc.MarkUsed(usedBy, usedAt); err != nil {
		return 0, nil, err
	}
	s.records[code] = take(pc)
	return shared.MarkRedeemed, pc, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*promocode.PromoCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("list"); err != nil {
		return nil, err
	}
	out := make([]*promocode.PromoCode, 0, len(s.records))
	for _, snap := range s.records {
		pc, err := snap.restore()
		if err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	return out, nil
}

func (s *MemoryStore) Stats(_ context.Context) (shared.PromoCodeStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("stats"); err != nil {
		return shared.PromoCodeStats{}, err
	}
	var stats shared.PromoCodeStats
	for _, snap := range s.records {
		stats.Total++
		if snap.status == promocode.StatusUsed.String() {
			stats.Used++
		}
	}
	stats.Available = stats.Total - stats.Used
	return stats, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fail("ping")
}

// Inserts reports how many records were actually written.
func (s *MemoryStore) Inserts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inserts
}

func take(pc *promocode.PromoCode) snapshot {
	return snapshot{
		code:            pc.Code().String(),
		leadName:        pc.LeadName(),
		productInterest: pc.ProductInterest(),
		cont:            pc.Contact(),
		createdAt:       pc.CreatedAt(),
		status:          pc.Status().String(),
		usedBy:          pc.UsedBy(),
		usedAt:          pc.UsedAt(),
	}
}

func (s snapshot) restore() (*promocode.PromoCode, error) {
	return promocode.Reconstruct(s.code, s.leadName, s.productInterest, s.cont, s.createdAt, s.status, s.usedBy, s.usedAt)
}
