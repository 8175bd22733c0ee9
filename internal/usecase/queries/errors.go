package queries

import (
	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/pkg/errs"
)

// notFoundOr marks a missing record with the given sentinel and every other
// storage failure as an operation failure.
func notFoundOr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(notFound, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
