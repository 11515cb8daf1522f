package domain

import "errors"

// Result reports the persistence outcome of a mutation that has already
// been applied to the in-memory snapshot. Persisted is false when the
// write-through failed; the local change stays either way.
type Result struct {
	Persisted bool
	Err       error
}

func persisted() Result { return Result{Persisted: true} }

func notPersisted(err error) Result { return Result{Err: err} }

// Sentinel errors returned when a mutation is rejected outright. A
// rejected mutation changes nothing, locally or remotely.
var (
	ErrForbidden          = errors.New("domain: operation not permitted")
	ErrNotFound           = errors.New("domain: not found")
	ErrInvalidCredentials = errors.New("domain: invalid credentials")
	ErrApplicationsClosed = errors.New("domain: applications are closed")
	ErrInvalidTransition  = errors.New("domain: invalid status transition")
	ErrSelfDelete         = errors.New("domain: cannot delete own account")
	ErrLastAdmin          = errors.New("domain: at least one admin must remain")
)
