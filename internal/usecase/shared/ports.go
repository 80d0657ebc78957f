package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"time"

	"promo-code-service/internal/domain/promocode"
)

type InsertResult int

const (
	InsertCreated InsertResult = iota + 1
	InsertAlreadyExists
)

func (r InsertResult) String() string {
	switch r {
	case InsertCreated:
		return "created"
	case InsertAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

type MarkResult int

const (
	MarkRedeemed MarkResult = iota + 1
	MarkAlreadyUsed
	MarkNotFound
)

func (r MarkResult) String() string {
	switch r {
	case MarkRedeemed:
		return "redeemed"
	case MarkAlreadyUsed:
		return "already_used"
	case MarkNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type PromoCodeStats struct {
	Total     int64
	Used      int64
	Available int64
}

// PromoCodeStore is implemented once per backend. InsertIfAbsent and MarkUsed
// must be atomic in the backing store itself: callers never pair a read with
// a write to claim a code or redeem it.
type PromoCodeStore interface {
	Exists(ctx context.Context, code promocode.Code) (bool, error)
	InsertIfAbsent(ctx context.Context, pc *promocode.PromoCode) (InsertResult, error)
	// Get returns a NOT_FOUND repository error when the code is absent.
	Get(ctx context.Context, code promocode.Code) (*promocode.PromoCode, error)
	// MarkUsed returns the stored record for MarkRedeemed and MarkAlreadyUsed.
	MarkUsed(ctx context.Context, code promocode.Code, usedBy string, usedAt time.Time) (MarkResult, *promocode.PromoCode, error)
	List(ctx context.Context) ([]*promocode.PromoCode, error)
	Stats(ctx context.Context) (PromoCodeStats, error)
	Ping(ctx context.Context) error
	Backend() string
}

// Recorder receives lifecycle events for metrics.
type Recorder interface {
	CodeIssued(backend string)
	GenerationCollision(backend string)
	GenerationExhausted(backend string)
	Redemption(backend string, result MarkResult)
	Validation(backend string, outcome string)
	StoreError(backend, op string)
}

type NopRecorder struct{}

func (NopRecorder) CodeIssued(string)             {}
func (NopRecorder) GenerationCollision(string)    {}
func (NopRecorder) GenerationExhausted(string)    {}
func (NopRecorder) Redemption(string, MarkResult) {}
func (NopRecorder) Validation(string, string)     {}
func (NopRecorder) StoreError(string, string)     {}
