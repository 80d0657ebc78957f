package repository

import (
	"context"
	"time"

	"promo-code-service/internal/domain/promocode"
	"promo-code-service/internal/infra"
	sqlc "promo-code-service/internal/infra/sqlc/generated"
	"promo-code-service/internal/pkg/config"
	"promo-code-service/internal/pkg/pgconv"
	"promo-code-service/internal/usecase/shared"
)

type PromoCodeQueries interface {
	ExistsPromoCode(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
	InsertPromoCode(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPromoCodeParams) error
	GetPromoCodeByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.PromoCodes, error)
	MarkPromoCodeUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPromoCodeUsedParams) (sqlc.PromoCodes, error)
	ListPromoCodes(ctx context.Context, db sqlc.DBTX) ([]sqlc.PromoCodes, error)
	CountPromoCodes(ctx context.Context, db sqlc.DBTX) (sqlc.CountPromoCodesRow, error)
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PromoCodeRepository struct {
	queries PromoCodeQueries
	db      sqlc.DBTX
	pinger  Pinger
}

func NewPromoCodeRepository(queries PromoCodeQueries, db sqlc.DBTX, pinger Pinger) *PromoCodeRepository {
	return &PromoCodeRepository{
		queries: queries,
		db:      db,
		pinger:  pinger,
	}
}

func (r *PromoCodeRepository) Backend() string {
	return config.BackendPostgres
}

func (r *PromoCodeRepository) Exists(ctx context.Context, code promocode.Code) (bool, error) {
	exists, err := r.queries.ExistsPromoCode(ctx, r.db, code.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check promo code existence", err)
	}
	return exists, nil
}

// InsertIfAbsent relies on the UNIQUE constraint on promo_codes.code; a
// unique violation is the "already exists" outcome, not an error.
func (r *PromoCodeRepository) InsertIfAbsent(ctx context.Context, pc *promocode.PromoCode) (shared.InsertResult, error) {
	err := r.queries.InsertPromoCode(ctx, r.db, sqlc.InsertPromoCodeParams{
		Code:            pc.Code().String(),
		LeadName:        pc.LeadName(),
		ProductInterest: pc.ProductInterest(),
		Contact:         pc.Contact(),
		CreatedAt:       pgconv.TimeToPgtype(pc.CreatedAt()),
		Status:          pc.Status().String(),
		UsedBy:          pgconv.StringPtrToPgtype(pc.UsedBy()),
		UsedAt:          pgconv.TimePtrToPgtype(pc.UsedAt()),
	})
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return shared.InsertAlreadyExists, nil
		}
		return 0, infra.WrapRepoErr("failed to insert promo code", err)
	}
	return shared.InsertCreated, nil
}

func (r *PromoCodeRepository) Get(ctx context.Context, code promocode.Code) (*promocode.PromoCode, error) {
	row, err := r.queries.GetPromoCodeByCode(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get promo code", err)
	}
	return toPromoCode(row)
}

// MarkUsed issues a conditional UPDATE guarded by status = 'unused'. When no
// row comes back the code is either missing or already redeemed; a follow-up
// read tells the two apart and never writes.
func (r *PromoCodeRepository) MarkUsed(ctx context.Context, code promocode.Code, usedBy string, usedAt time.Time) (shared.MarkResult, *promocode.PromoCode, error) {
	row, err := r.queries.MarkPromoCodeUsed(ctx, r.db, sqlc.MarkPromoCodeUsedParams{
		Code:   code.String(),
		UsedBy: pgconv.StringToPgtype(usedBy),
		UsedAt: pgconv.TimeToPgtype(usedAt),
	})
	if err == nil {
		pc, convErr := toPromoCode(row)
		if convErr != nil {
			return 0, nil, convErr
		}
		return shared.MarkRedeemed, pc, nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, nil, infra.WrapRepoErr("failed to mark promo code used", err)
	}

	current, err := r.Get(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return shared.MarkNotFound, nil, nil
		}
		return 0, nil, err
	}
	if !current.IsUsed() {
		// The guarded update matched nothing yet the row reads as unused.
		return 0, nil, infra.WrapRepoErr("promo code changed during redemption", nil, infra.KindCorruptRecord)
	}
	return shared.MarkAlreadyUsed, current, nil
}

func (r *PromoCodeRepository) List(ctx context.Context) ([]*promocode.PromoCode, error) {
	rows, err := r.queries.ListPromoCodes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promo codes", err)
	}

	result := make([]*promocode.PromoCode, 0, len(rows))
	for _, row := range rows {
		pc, err := toPromoCode(row)
		if err != nil {
			return nil, err
		}
		result = append(result, pc)
	}
	return result, nil
}

func (r *PromoCodeRepository) Stats(ctx context.Context) (shared.PromoCodeStats, error) {
	row, err := r.queries.CountPromoCodes(ctx, r.db)
	if err != nil {
		return shared.PromoCodeStats{}, infra.WrapRepoErr("failed to count promo codes", err)
	}
	return shared.PromoCodeStats{
		Total:     row.Total,
		Used:      row.Used,
		Available: row.Total - row.Used,
	}, nil
}

func (r *PromoCodeRepository) Ping(ctx context.Context) error {
	if err := r.pinger.Ping(ctx); err != nil {
		return infra.WrapRepoErr("database ping failed", err)
	}
	return nil
}

func toPromoCode(row sqlc.PromoCodes) (*promocode.PromoCode, error) {
	pc, err := promocode.Reconstruct(
		row.Code,
		row.LeadName,
		row.ProductInterest,
		row.Contact,
		pgconv.TimeFromPgtype(row.CreatedAt),
		row.Status,
		pgconv.StringPtrFromPgtype(row.UsedBy),
		pgconv.TimePtrFromPgtype(row.UsedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("stored promo code is inconsistent", err, infra.KindCorruptRecord)
	}
	return pc, nil
}
