package commerce

import (
	"errors"

	"membership-backoffice/internal/pkg/errs"
)

// Sentinel lookup misses; not platform failures.
var (
	ErrCodeNotFound = errs.New("discount code not found on platform")
	ErrRuleNotFound = errs.New("price rule not found on platform")
)

type ErrorKind string

const (
	// KindTransient covers timeouts, 5xx and 429; eligible for retry.
	KindTransient ErrorKind = "TRANSIENT"
	// KindConflict covers 422 duplicate-resource responses; the caller
	// resolves the existing resource instead of failing.
	KindConflict ErrorKind = "CONFLICT"
	// KindPermanent covers the remaining 4xx validation failures.
	KindPermanent ErrorKind = "PERMANENT"
)

type PlatformError struct {
	Kind   ErrorKind
	Op     string
	Status int
	Body   string
	err    error
}

func (e *PlatformError) Error() string {
	msg := string(e.Kind) + ": commerce " + e.Op + " failed"
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}
	if e.Body != "" {
		return msg + ": " + e.Body
	}
	return msg
}

func (e *PlatformError) Unwrap() error {
	return e.err
}

func IsTransient(err error) bool { return isKind(err, KindTransient) }
func IsConflict(err error) bool  { return isKind(err, KindConflict) }
func IsPermanent(err error) bool { return isKind(err, KindPermanent) }

func isKind(err error, kind ErrorKind) bool {
	var pe *PlatformError
	return errors.As(err, &pe) && pe.Kind == kind
}
