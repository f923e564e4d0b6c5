package database

import "errors"

// Error taxonomy surfaced to handlers. Each kind maps to a distinct HTTP
// status; none are transient, none are retried.
var (
	// ErrNotFound - a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict - duplicate campaign membership.
	ErrConflict = errors.New("conflict")
	// ErrInvalidOperation - semantically disallowed request, like the master
	// joining their own campaign.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrForbidden - a master-only action attempted by another user.
	ErrForbidden = errors.New("forbidden")
)

// StoreError pairs a taxonomy kind with the message shown to the caller.
// errors.Is against the sentinels above matches through Unwrap.
type StoreError struct {
	kind error
	msg  string
}

func (e *StoreError) Error() string { return e.msg }
func (e *StoreError) Unwrap() error { return e.kind }

func notFound(msg string) error {
	return &StoreError{kind: ErrNotFound, msg: msg}
}

func conflict(msg string) error {
	return &StoreError{kind: ErrConflict, msg: msg}
}

func invalidOperation(msg string) error {
	return &StoreError{kind: ErrInvalidOperation, msg: msg}
}

func forbidden(msg string) error {
	return &StoreError{kind: ErrForbidden, msg: msg}
}
