package session

import "errors"

var (
	// ErrNotFound - session id does not resolve
	ErrNotFound = errors.New("session not found")
	// ErrNotAuthorized - caller is not one of the two bound roles
	ErrNotAuthorized = errors.New("caller is not a participant of this session")
	// ErrInvalidInput - missing answer value or rating out of range
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotCompleted - rating attempted before the session completed
	ErrNotCompleted = errors.New("session is not completed yet")
	// ErrAlreadyRated - the role already contributed its one rating
	ErrAlreadyRated = errors.New("rating already submitted")
)
