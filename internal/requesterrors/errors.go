package requesterrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrRequestNotFound = errors.New("request not found")
)

// business logic errors
var (
	ErrInvalidRequest    = errors.New("invalid request input")
	ErrInvalidItem       = errors.New("invalid item details")
	ErrSelfRequest       = errors.New("cannot request own item")
	ErrNotOwner          = errors.New("only the item owner may do this")
	ErrInvalidTransition = errors.New("request is no longer pending")
)

// ErrAlreadyRequested is a signal rather than a failure: an active request by
// the same user for the same item already exists. Callers receive the blocking
// request alongside this error and must not treat the call as a new creation.
var ErrAlreadyRequested = errors.New("item already requested by this user")
