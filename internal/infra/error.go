package infra

import (
	"errors"

	"promo-code-service/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps a backend error. Kind defaults to KindStorageUnavailable:
// anything a store cannot classify is treated as the backend being unusable,
// never as an empty result.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindStorageUnavailable
	if len(kind) > 0 {
		k = kind[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindStorageUnavailable RepositoryErrorKind = "STORAGE_UNAVAILABLE"
	KindCorruptRecord      RepositoryErrorKind = "CORRUPT_RECORD"
)
