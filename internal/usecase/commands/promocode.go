package commands

//go:generate mockgen -source=promocode.go -destination=../../../tests/mock/commands/promocode.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"promo-code-service/internal/domain/promocode"
	"promo-code-service/internal/pkg/clock"
	"promo-code-service/internal/pkg/errs"
	"promo-code-service/internal/usecase/shared"
)

const (
	DefaultMaxAttempts  = 10
	DefaultUsedByLabel  = "Sales Representative"
	DefaultStoreTimeout = 3 * time.Second
)

type IssueRequest struct {
	LeadName        string
	ProductInterest string
	Contact         string
}

type IssueResult struct {
	PromoCode *promocode.PromoCode
	Attempts  int
}

type RedeemResult struct {
	Result shared.MarkResult
	// PromoCode is nil when Result is MarkNotFound.
	PromoCode *promocode.PromoCode
}

type PromoCodeCommands interface {
	Issue(ctx context.Context, req IssueRequest) (*IssueResult, error)
	Redeem(ctx context.Context, code string, usedBy string) (*RedeemResult, error)
}

type PromoCodeOptions struct {
	MaxAttempts   int
	DefaultUsedBy string
	StoreTimeout  time.Duration
}

type promoCodeCommandsImpl struct {
	store     shared.PromoCodeStore
	generator promocode.Generator
	clock     clock.Clock
	recorder  shared.Recorder
	logger    *slog.Logger
	opts      PromoCodeOptions
}

func NewPromoCodeCommands(
	store shared.PromoCodeStore,
	generator promocode.Generator,
	clk clock.Clock,
	recorder shared.Recorder,
	logger *slog.Logger,
	opts PromoCodeOptions,
) PromoCodeCommands {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if strings.TrimSpace(opts.DefaultUsedBy) == "" {
		opts.DefaultUsedBy = DefaultUsedByLabel
	}
	if recorder == nil {
		recorder = shared.NopRecorder{}
	}
	return &promoCodeCommandsImpl{
		store:     store,
		generator: generator,
		clock:     clk,
		recorder:  recorder,
		logger:    logger,
		opts:      opts,
	}
}

// Issue claims a fresh code in one atomic InsertIfAbsent per candidate. A
// colliding candidate is discarded and never written.
func (uc *promoCodeCommandsImpl) Issue(ctx context.Context, req IssueRequest) (*IssueResult, error) {
	lead, err := promocode.NewLead(req.LeadName, req.ProductInterest, req.Contact)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidInput)
	}

	backend := uc.store.Backend()
	for attempt := 1; attempt <= uc.opts.MaxAttempts; attempt++ {
		code, err := uc.generator.Generate()
		if err != nil {
			return nil, errs.Wrap(err, "failed to generate promo code candidate")
		}

		pc := promocode.New(code, lead, uc.clock.Now())
		result, err := uc.insert(ctx, pc)
		if err != nil {
			uc.recorder.StoreError(backend, "insert")
			return nil, shared.StorageError(err, "insert promo code")
		}

		if result == shared.InsertCreated {
			uc.recorder.CodeIssued(backend)
			uc.logger.Info("promo code issued",
				"code", code.String(),
				"product_interest", lead.ProductInterest(),
				"attempts", attempt,
				"backend", backend,
			)
			return &IssueResult{PromoCode: pc, Attempts: attempt}, nil
		}

		uc.recorder.GenerationCollision(backend)
		uc.logger.Warn("promo code candidate collided, retrying",
			"candidate", code.String(),
			"attempt", attempt,
			"backend", backend,
		)
	}

	uc.recorder.GenerationExhausted(backend)
	uc.logger.Error("promo code generation exhausted",
		"max_attempts", uc.opts.MaxAttempts,
		"backend", backend,
	)
	return nil, errs.Wrapf(shared.ErrGenerationExhausted, "no unique code after %d attempts", uc.opts.MaxAttempts)
}

func (uc *promoCodeCommandsImpl) insert(ctx context.Context, pc *promocode.PromoCode) (shared.InsertResult, error) {
	ctx, cancel := shared.StoreContext(ctx, uc.opts.StoreTimeout)
	defer cancel()
	return uc.store.InsertIfAbsent(ctx, pc)
}

func (uc *promoCodeCommandsImpl) Redeem(ctx context.Context, rawCode string, usedBy string) (*RedeemResult, error) {
	code, err := promocode.NormalizeCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidInput)
	}

	usedBy = strings.TrimSpace(usedBy)
	if usedBy == "" {
		usedBy = uc.opts.DefaultUsedBy
	}

	backend := uc.store.Backend()
	storeCtx, cancel := shared.StoreContext(ctx, uc.opts.StoreTimeout)
	defer cancel()

	result, pc, err := uc.store.MarkUsed(storeCtx, code, usedBy, uc.clock.Now())
	if err != nil {
		uc.recorder.StoreError(backend, "mark_used")
		return nil, shared.StorageError(err, "mark promo code used")
	}

	uc.recorder.Redemption(backend, result)
	uc.logger.Info("promo code redemption",
		"code", code.String(),
		"result", result.String(),
		"used_by", usedBy,
		"backend", backend,
	)
	return &RedeemResult{Result: result, PromoCode: pc}, nil
}
