// Package dberr translates store constraint violations into domain errors.
//
// The store enforces invariants (unique names, valid foreign keys,
// self-reference prevention) at the schema level; this package is the seam
// that turns those failures into the domain vocabulary, so callers never
// pre-check conditions with extra queries and never race between check and
// insert. It is deliberately driver-free: any adapter whose errors implement
// ConstraintNamer participates.
package dberr

import "errors"

// ConstraintNamer is implemented by store errors that can name the schema
// constraint they violated.
type ConstraintNamer interface {
	error
	ConstraintName() string
}

// OnConstraint returns domainErr when err (or anything it wraps) names the
// given constraint. Every other error passes through unchanged for the next
// mapping or the response layer's internal-error fallback; nil stays nil.
func OnConstraint(err error, name string, domainErr error) error {
	if err == nil {
		return nil
	}
	var cn ConstraintNamer
	if errors.As(err, &cn) && cn.ConstraintName() == name {
		return domainErr
	}
	return err
}
