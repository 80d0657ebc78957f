package shared

import (
	"context"

	"promo-code-service/internal/infra"
	"promo-code-service/internal/pkg/errs"
)

// Error taxonomy exposed by the lifecycle engine. Conflicts and missing codes
// on validate/redeem are reported as outcomes, not errors.
var (
	ErrInvalidInput        = errs.New("invalid input")
	ErrNotFound            = errs.New("promo code not found")
	ErrGenerationExhausted = errs.New("promo code generation exhausted")
	ErrStorageUnavailable  = errs.New("storage unavailable")
)

// StorageError classifies any store failure as ErrStorageUnavailable while
// keeping the original chain for logs. Timeouts are included.
func StorageError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errs.Is(err, context.DeadlineExceeded) {
		return errs.Mark(errs.Wrapf(err, "%s timed out", op), ErrStorageUnavailable)
	}
	if infra.IsKind(err, infra.KindCorruptRecord) {
		return errs.Mark(errs.Wrapf(err, "%s read a corrupt record", op), ErrStorageUnavailable)
	}
	return errs.Mark(errs.Wrap(err, op), ErrStorageUnavailable)
}

// Kind returns the stable, client-facing classification of an engine error.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errs.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errs.Is(err, ErrNotFound):
		return "not_found"
	case errs.Is(err, ErrGenerationExhausted):
		return "generation_exhausted"
	case errs.Is(err, ErrStorageUnavailable):
		return "storage_unavailable"
	default:
		return "internal"
	}
}
