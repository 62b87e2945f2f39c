package lifecycle

import "errors"

// ErrNotAuthenticated is returned when no current user is available.
var ErrNotAuthenticated = errors.New("user not authenticated")

var (
	// ErrGroupNotFound maps the store's "row not found" for group lookups.
	ErrGroupNotFound = errors.New("group not found")

	// ErrAlreadyMember is returned when inviting a user who is already in the group.
	ErrAlreadyMember = errors.New("user is already a member of this group")
)

// ValidationError is a client-side rejection raised before any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNameRequired        = &ValidationError{Field: "name", Message: "group name is required"}
	ErrInvalidGroupType    = &ValidationError{Field: "type", Message: "group type must be destination or follow"}
	ErrDestinationRequired = &ValidationError{Field: "destination", Message: "destination is required"}
	ErrInvalidDestination  = &ValidationError{Field: "destination", Message: "destination must be a catalog id"}
	ErrLeaderRequired      = &ValidationError{Field: "leader", Message: "leader is required"}
	ErrInvalidCode         = &ValidationError{Field: "code", Message: "invalid group code"}
)

// BackendError wraps a store failure. Its message is the store's message, unchanged.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
