package queries

//go:generate mockgen -source=promocode.go -destination=../../../tests/mock/queries/promocode.go -package=queriesmock

import (
	"context"
	"log/slog"
	"time"

	"promo-code-service/internal/domain/promocode"
	"promo-code-service/internal/infra"
	"promo-code-service/internal/pkg/clock"
	"promo-code-service/internal/pkg/errs"
	"promo-code-service/internal/usecase/shared"
)

type ValidationOutcome string

const (
	ValidationValid       ValidationOutcome = "valid"
	ValidationAlreadyUsed ValidationOutcome = "already_used"
	ValidationNotFound    ValidationOutcome = "not_found"
)

type ValidationResult struct {
	Outcome ValidationOutcome
	// PromoCode is nil for ValidationNotFound.
	PromoCode *promocode.PromoCode
}

type HealthReport struct {
	Backend   string
	Reachable bool
	CheckedAt time.Time
}

type PromoCodeQueries interface {
	Validate(ctx context.Context, code string) (*ValidationResult, error)
	List(ctx context.Context) ([]*promocode.PromoCode, error)
	Stats(ctx context.Context) (shared.PromoCodeStats, error)
	Health(ctx context.Context) HealthReport
}

type promoCodeQueriesImpl struct {
	store        shared.PromoCodeStore
	clock        clock.Clock
	recorder     shared.Recorder
	logger       *slog.Logger
	storeTimeout time.Duration
}

func NewPromoCodeQueries(
	store shared.PromoCodeStore,
	clk clock.Clock,
	recorder shared.Recorder,
	logger *slog.Logger,
	storeTimeout time.Duration,
) PromoCodeQueries {
	if recorder == nil {
		recorder = shared.NopRecorder{}
	}
	return &promoCodeQueriesImpl{
		store:        store,
		clock:        clk,
		recorder:     recorder,
		logger:       logger,
		storeTimeout: storeTimeout,
	}
}

// Validate never writes; it is safe to call any number of times.
func (q *promoCodeQueriesImpl) Validate(ctx context.Context, rawCode string) (*ValidationResult, error) {
	code, err := promocode.NormalizeCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidInput)
	}

	backend := q.store.Backend()
	ctx, cancel := shared.StoreContext(ctx, q.storeTimeout)
	defer cancel()

	pc, err := q.store.Get(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			q.recorder.Validation(backend, string(ValidationNotFound))
			return &ValidationResult{Outcome: ValidationNotFound}, nil
		}
		q.recorder.StoreError(backend, "get")
		return nil, shared.StorageError(err, "get promo code")
	}

	outcome := ValidationValid
	if pc.IsUsed() {
		outcome = ValidationAlreadyUsed
	}
	q.recorder.Validation(backend, string(outcome))
	return &ValidationResult{Outcome: outcome, PromoCode: pc}, nil
}

func (q *promoCodeQueriesImpl) List(ctx context.Context) ([]*promocode.PromoCode, error) {
	ctx, cancel := shared.StoreContext(ctx, q.storeTimeout)
	defer cancel()

	list, err := q.store.List(ctx)
	if err != nil {
		q.recorder.StoreError(q.store.Backend(), "list")
		return nil, shared.StorageError(err, "list promo codes")
	}
	return list, nil
}

func (q *promoCodeQueriesImpl) Stats(ctx context.Context) (shared.PromoCodeStats, error) {
	ctx, cancel := shared.StoreContext(ctx, q.storeTimeout)
	defer cancel()

	stats, err := q.store.Stats(ctx)
	if err != nil {
		q.recorder.StoreError(q.store.Backend(), "stats")
		return shared.PromoCodeStats{}, shared.StorageError(err, "count promo codes")
	}
	return stats, nil
}

func (q *promoCodeQueriesImpl) Health(ctx context.Context) HealthReport {
	ctx, cancel := shared.StoreContext(ctx, q.storeTimeout)
	defer cancel()

	report := HealthReport{
		Backend:   q.store.Backend(),
		Reachable: true,
		CheckedAt: q.clock.Now(),
	}
	if err := q.store.Ping(ctx); err != nil {
		q.logger.Warn("store health check failed", "backend", report.Backend, "error", err)
		report.Reachable = false
	}
	return report
}
