package player

import "errors"

// Every rule violation wraps exactly one of these.
var (
	ErrInvalidState      = errors.New("invalid state")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrForcedCoup        = errors.New("forced coup required")
	ErrIllegalTarget     = errors.New("illegal target")
	ErrDuplicateName     = errors.New("duplicate name")
	ErrUnsupported       = errors.New("unsupported operation")
)

// Kind classifies a rule violation.
type Kind int

const (
	KindNone Kind = iota
	KindInvalidState
	KindInsufficientFunds
	KindForcedCoup
	KindIllegalTarget
	KindDuplicateName
	KindUnsupported
	KindUnknown
)

func (k Kind) String() string {
	return []string{"None", "InvalidState", "InsufficientFunds", "ForcedCoupRequired",
		"IllegalTarget", "DuplicateName", "UnsupportedOperation", "Unknown"}[k]
}

// KindOf returns the kind of err, KindNone for nil and KindUnknown for foreign errors.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, ErrForcedCoup):
		return KindForcedCoup
	case errors.Is(err, ErrIllegalTarget):
		return KindIllegalTarget
	case errors.Is(err, ErrDuplicateName):
		return KindDuplicateName
	case errors.Is(err, ErrUnsupported):
		return KindUnsupported
	default:
		return KindUnknown
	}
}
