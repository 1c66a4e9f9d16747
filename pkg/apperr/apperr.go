package apperr

import "errors"

// Kind classifies a business-rule failure so the transport layer can map
// it to a status code without string matching.
type Kind int

const (
	Internal Kind = iota
	NotFound
	Forbidden
	Conflict
	Validation
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func E(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// KindOf unwraps err to its Kind. Anything unclassified is Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

func Is(err error, kind Kind) bool { return err != nil && KindOf(err) == kind }
