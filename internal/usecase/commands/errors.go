package commands

import (
	"adslot-ledger/internal/infra"
	"adslot-ledger/internal/pkg/errs"
)

func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

// lookupErr turns a repository miss into the domain's not-found sentinel.
func lookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(notFound, errs.ErrNotFound)
	}
	return storageErr(err)
}

func storageErr(err error) error {
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
