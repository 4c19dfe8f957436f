package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// constraintError adapts a *pq.Error to the dberr.ConstraintNamer
// capability so the translator never sees a driver type.
type constraintError struct {
	pqe *pq.Error
}

func (e *constraintError) Error() string {
	return e.pqe.Error()
}

func (e *constraintError) Unwrap() error {
	return e.pqe
}

// ConstraintName names the violated schema constraint.
func (e *constraintError) ConstraintName() string {
	return e.pqe.Constraint
}

// wrapErr exposes the constraint name of a pq error, if it carries one.
func wrapErr(err error) error {
	var pqe *pq.Error
	if errors.As(err, &pqe) && pqe.Constraint != "" {
		return &constraintError{pqe: pqe}
	}
	return err
}
