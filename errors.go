package wavlmap

import "github.com/cockroachdb/errors"

// Boundary errors, raised by panic rather than returned, matching the
// convention used for unrecoverable internal-consistency violations: a
// stale cursor or a malformed range reflects a programming error at the
// call site, not a condition the caller can usefully recover from inline.
var (
	ErrStaleCursor       = errors.New("wavlmap: cursor is stale")
	ErrKeyOrderViolation = errors.New("wavlmap: key order violation")
	ErrInvalidRange      = errors.New("wavlmap: invalid range bounds")
	ErrConsumedRange     = errors.New("wavlmap: range already consumed")
)

func raiseStaleCursor() {
	panic(errors.WithStack(ErrStaleCursor))
}

func raiseKeyOrderViolation(detail string) {
	panic(errors.WithStack(errors.Wrap(ErrKeyOrderViolation, detail)))
}

func raiseInvalidRange(detail string) {
	panic(errors.WithStack(errors.Wrap(ErrInvalidRange, detail)))
}

func raiseConsumedRange() {
	panic(errors.WithStack(ErrConsumedRange))
}
